package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/flashseed/internal/dataset"
)

var categoryNames = []string{
	"Техника для кухни", "Смартфоны", "Телевизоры и цифровое ТВ", "Компьютеры", "Аудиотехника",
}

// productNames holds ten products per category, in category order.
var productNames = []string{
	"Холодильник", "Микроволновка", "Посудомоечная машина", "Мультиварка", "Чайник",
	"Блендер", "Миксер", "Соковыжималка", "Тостер", "Кофемашина",

	"iPhone 12", "Samsung Galaxy S21", "Xiaomi Mi 11", "Huawei P40", "OnePlus 9",
	"Google Pixel 5", "Sony Xperia 1", "Nokia 8.3", "Oppo Find X3", "Realme GT",

	"Samsung QLED", "LG OLED", "Sony Bravia", "Philips Ambilight", "Panasonic Viera",
	"Sharp Aquos", "Toshiba Regza", "Vizio SmartCast", "Hisense H8G", "TCL 6-Series",

	"MacBook Pro", "Dell XPS", "HP Spectre", "Lenovo ThinkPad", "Asus ZenBook",
	"Microsoft Surface", "Acer Swift", "Razer Blade", "MSI Prestige", "Huawei MateBook",

	"JBL Speaker", "Sony Headphones", "Bose Sound System", "Yamaha Receiver", "Pioneer Car Audio",
	"Beats by Dre", "Sennheiser HD", "Marshall Acton", "Bowers & Wilkins", "Klipsch R-41M",
}

const productsPerCategory = 10

// DefaultTables returns the demo tables in insertion order.
func DefaultTables() []TableDefinition {
	return []TableDefinition{
		{
			Name: "categories",
			CreateSQL: `
				CREATE TABLE categories (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL
				);
			`,
			Build: func(g *DataGenerator) *dataset.Dataset {
				return dataset.New("categories").
					Add("id", dataset.Ints(len(categoryNames))).
					Add("name", dataset.Strings(categoryNames...))
			},
		},
		{
			Name: "products",
			CreateSQL: `
				CREATE TABLE products (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					category_id INT NOT NULL,
					FOREIGN KEY (category_id) REFERENCES categories(id)
				);
			`,
			DependsOn: []string{"categories"},
			Build: func(g *DataGenerator) *dataset.Dataset {
				categoryIDs := make([]interface{}, 0, len(productNames))
				for id := 1; id <= len(categoryNames); id++ {
					for i := 0; i < productsPerCategory; i++ {
						categoryIDs = append(categoryIDs, id)
					}
				}
				return dataset.New("products").
					Add("id", dataset.Ints(len(productNames))).
					Add("name", dataset.Strings(productNames...)).
					Add("category_id", categoryIDs)
			},
		},
		{
			Name: "managers",
			CreateSQL: `
				CREATE TABLE managers (
					id SERIAL PRIMARY KEY,
					full_name VARCHAR(255) NOT NULL,
					birth_date DATE NOT NULL
				);
			`,
			Build: func(g *DataGenerator) *dataset.Dataset {
				const n = 15
				names := make([]interface{}, n)
				for i := range names {
					names[i] = g.Name()
				}
				births := make([]interface{}, n)
				for i := range births {
					births[i] = g.DateOfBirth(25, 60).Format("2006-01-02")
				}
				return dataset.New("managers").
					Add("id", dataset.Ints(n)).
					Add("full_name", names).
					Add("birth_date", births)
			},
		},
		{
			Name: "stores",
			CreateSQL: `
				CREATE TABLE stores (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					address VARCHAR(255) NOT NULL
				);
			`,
			Build: func(g *DataGenerator) *dataset.Dataset {
				const n = 5
				names := make([]interface{}, n)
				for i := range names {
					names[i] = g.Company()
				}
				addresses := make([]interface{}, n)
				for i := range addresses {
					addresses[i] = fmt.Sprintf("%s, %s, %s, д. %s, эт. %d, %s",
						g.Country(), g.City(), g.StreetName(), g.BuildingNumber(), g.IntBetween(1, 10), g.Postcode())
				}
				return dataset.New("stores").
					Add("id", dataset.Ints(n)).
					Add("name", names).
					Add("address", addresses)
			},
		},
		{
			Name: "suppliers",
			CreateSQL: `
				CREATE TABLE suppliers (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					address VARCHAR(255) NOT NULL
				);
			`,
			Build: func(g *DataGenerator) *dataset.Dataset {
				const n = 15
				names := make([]interface{}, n)
				for i := range names {
					names[i] = g.Company()
				}
				addresses := make([]interface{}, n)
				for i := range addresses {
					addresses[i] = g.Address()
				}
				return dataset.New("suppliers").
					Add("id", dataset.Ints(n)).
					Add("name", names).
					Add("address", addresses)
			},
		},
		{
			Name: "currencies",
			CreateSQL: `
				CREATE TABLE currencies (
					id SERIAL PRIMARY KEY,
					name VARCHAR(50) NOT NULL
				);
			`,
			Build: func(g *DataGenerator) *dataset.Dataset {
				return dataset.New("currencies").
					Add("id", dataset.Ints(3)).
					Add("name", dataset.Strings("RUB", "USD", "EUR"))
			},
		},
		{
			Name: "units_of_measurement",
			CreateSQL: `
				CREATE TABLE units_of_measurement (
					id SERIAL PRIMARY KEY,
					short_name VARCHAR(50) NOT NULL,
					full_name VARCHAR(255) NOT NULL
				);
			`,
			Build: func(g *DataGenerator) *dataset.Dataset {
				return dataset.New("units_of_measurement").
					Add("id", dataset.Ints(2)).
					Add("short_name", dataset.Strings("шт.", "кг")).
					Add("full_name", dataset.Strings("Штуки", "Килограммы"))
			},
		},
	}
}
