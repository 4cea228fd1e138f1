package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	LocaleRU = "ru_RU"
	LocaleEN = "en_US"
)

type localeData struct {
	maleFirst, maleMiddle, maleLast       []string
	femaleFirst, femaleMiddle, femaleLast []string
	companyPrefixes                       []string
	largeCompanies                        []string
	countries                             []string
	cityPrefixes                          []string
	cities                                []string
	streetPrefixes                        []string
	streets                               []string
	postcodeDigits                        int
}

var locales = map[string]*localeData{
	LocaleRU: {
		maleFirst: []string{
			"Александр", "Алексей", "Андрей", "Антон", "Артем", "Борис", "Вадим", "Валерий",
			"Виктор", "Владимир", "Геннадий", "Григорий", "Денис", "Дмитрий", "Евгений", "Егор",
			"Иван", "Игорь", "Кирилл", "Константин", "Леонид", "Максим", "Михаил", "Никита",
			"Николай", "Олег", "Павел", "Роман", "Сергей", "Станислав", "Тимофей", "Юрий",
		},
		maleMiddle: []string{
			"Александрович", "Алексеевич", "Андреевич", "Борисович", "Васильевич", "Викторович",
			"Владимирович", "Дмитриевич", "Евгеньевич", "Иванович", "Игоревич", "Максимович",
			"Михайлович", "Николаевич", "Олегович", "Павлович", "Петрович", "Романович",
			"Сергеевич", "Юрьевич",
		},
		maleLast: []string{
			"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов", "Михайлов",
			"Новиков", "Федоров", "Морозов", "Волков", "Алексеев", "Лебедев", "Семенов", "Егоров",
			"Павлов", "Козлов", "Степанов", "Николаев", "Орлов", "Андреев", "Макаров", "Никитин",
			"Захаров", "Зайцев", "Соловьев", "Борисов", "Яковлев", "Григорьев",
		},
		femaleFirst: []string{
			"Александра", "Алина", "Анастасия", "Анна", "Валентина", "Валерия", "Вера", "Виктория",
			"Галина", "Дарья", "Евгения", "Екатерина", "Елена", "Елизавета", "Ирина", "Ксения",
			"Лариса", "Людмила", "Марина", "Мария", "Надежда", "Наталья", "Нина", "Ольга",
			"Полина", "Светлана", "София", "Татьяна", "Юлия",
		},
		femaleMiddle: []string{
			"Александровна", "Алексеевна", "Андреевна", "Борисовна", "Васильевна", "Викторовна",
			"Владимировна", "Дмитриевна", "Евгеньевна", "Ивановна", "Игоревна", "Максимовна",
			"Михайловна", "Николаевна", "Олеговна", "Павловна", "Петровна", "Романовна",
			"Сергеевна", "Юрьевна",
		},
		femaleLast: []string{
			"Иванова", "Смирнова", "Кузнецова", "Попова", "Васильева", "Петрова", "Соколова",
			"Михайлова", "Новикова", "Федорова", "Морозова", "Волкова", "Алексеева", "Лебедева",
			"Семенова", "Егорова", "Павлова", "Козлова", "Степанова", "Николаева", "Орлова",
			"Андреева", "Макарова", "Никитина", "Захарова", "Зайцева", "Соловьева", "Борисова",
		},
		companyPrefixes: []string{"ООО", "ЗАО", "ОАО", "ПАО", "ИП", "НПО", "РАО"},
		largeCompanies: []string{
			"АвтоВАЗ", "Аэрофлот", "Северсталь", "Ростелеком", "Мегафон", "Магнит",
			"Татнефть", "Русал", "Норникель", "Транснефть", "Уралкалий", "Лукойл",
		},
		countries: []string{
			"Россия", "Беларусь", "Казахстан", "Армения", "Азербайджан", "Грузия", "Узбекистан",
			"Киргизия", "Таджикистан", "Молдова", "Латвия", "Литва", "Эстония", "Сербия",
			"Монголия", "Финляндия", "Польша", "Германия", "Италия", "Франция", "Испания",
			"Китай", "Индия", "Турция", "Вьетнам", "Бразилия", "Египет", "Япония",
		},
		cityPrefixes: []string{"г.", "г.", "г.", "п.", "с.", "д.", "клх", "ст."},
		cities: []string{
			"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань", "Нижний Новгород",
			"Челябинск", "Самара", "Омск", "Ростов-на-Дону", "Уфа", "Красноярск", "Воронеж",
			"Пермь", "Волгоград", "Краснодар", "Саратов", "Тюмень", "Тольятти", "Ижевск",
			"Барнаул", "Ульяновск", "Иркутск", "Хабаровск", "Ярославль", "Владивосток",
			"Махачкала", "Томск", "Оренбург", "Кемерово", "Рязань", "Астрахань", "Пенза",
			"Липецк", "Тула", "Киров", "Чебоксары", "Калининград", "Курск", "Ковров",
		},
		streetPrefixes: []string{"ул.", "ул.", "ул.", "пер.", "пр.", "наб.", "бул.", "ш."},
		streets: []string{
			"Ленина", "Гагарина", "Мира", "Советская", "Молодежная", "Центральная", "Школьная",
			"Лесная", "Садовая", "Новая", "Набережная", "Заводская", "Пушкина", "Кирова",
			"Строителей", "Полевая", "Октябрьская", "Комсомольская", "Чехова", "Лермонтова",
			"Горького", "Победы", "Зеленая", "Луговая", "Энергетиков", "Космонавтов",
		},
		postcodeDigits: 6,
	},
	LocaleEN: {
		maleFirst: []string{
			"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
			"Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Paul", "Steven",
		},
		maleLast: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
			"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas", "Moore", "Jackson",
		},
		femaleFirst: []string{
			"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
			"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Sandra", "Ashley", "Emily",
		},
		companyPrefixes: []string{"Inc", "LLC", "Group", "and Sons", "Ltd"},
		largeCompanies: []string{
			"Acme", "Globex", "Initech", "Umbrella", "Stark Industries", "Wayne Enterprises",
		},
		countries: []string{
			"United States", "Canada", "Mexico", "United Kingdom", "Ireland", "Australia",
			"New Zealand", "Germany", "France", "Japan", "Brazil", "India",
		},
		cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
			"San Antonio", "San Diego", "Dallas", "Austin", "Seattle", "Denver", "Boston",
		},
		streetPrefixes: []string{"Street", "Avenue", "Road", "Lane", "Drive", "Court", "Way"},
		streets: []string{
			"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lake", "Hill",
			"Park", "Sunset", "Highland", "River", "Church",
		},
		postcodeDigits: 5,
	},
}

// DataGenerator produces localized fake values. With a fixed seed and clock the
// output sequence is fully reproducible.
type DataGenerator struct {
	rand   *rand.Rand
	locale string
	data   *localeData
	now    func() time.Time
}

// NewDataGenerator returns a generator for locale. A zero seed is replaced by
// the current time.
func NewDataGenerator(locale string, seed int64) (*DataGenerator, error) {
	data, ok := locales[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale: %s", locale)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		rand:   rand.New(rand.NewSource(seed)),
		locale: locale,
		data:   data,
		now:    time.Now,
	}, nil
}

func (g *DataGenerator) Locale() string {
	return g.locale
}

func (g *DataGenerator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}

// IntBetween returns an integer in [lo, hi].
func (g *DataGenerator) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rand.Intn(hi-lo+1)
}

// Name returns a full person name. Russian names follow the
// "Фамилия Имя Отчество" order with a consistent gender.
func (g *DataGenerator) Name() string {
	d := g.data
	female := g.rand.Intn(2) == 1

	if g.locale == LocaleRU {
		if female {
			return fmt.Sprintf("%s %s %s", g.pick(d.femaleLast), g.pick(d.femaleFirst), g.pick(d.femaleMiddle))
		}
		return fmt.Sprintf("%s %s %s", g.pick(d.maleLast), g.pick(d.maleFirst), g.pick(d.maleMiddle))
	}

	first := d.maleFirst
	if female {
		first = d.femaleFirst
	}
	return fmt.Sprintf("%s %s", g.pick(first), g.pick(d.maleLast))
}

func (g *DataGenerator) lastName() string {
	if g.data.femaleLast != nil && g.rand.Intn(2) == 1 {
		return g.pick(g.data.femaleLast)
	}
	return g.pick(g.data.maleLast)
}

// DateOfBirth returns a date for someone aged between minAge and maxAge
// (inclusive) today.
func (g *DataGenerator) DateOfBirth(minAge, maxAge int) time.Time {
	now := g.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	earliest := today.AddDate(-(maxAge + 1), 0, 1)
	latest := today.AddDate(-minAge, 0, 0)
	days := int(latest.Sub(earliest).Hours() / 24)

	return earliest.AddDate(0, 0, g.rand.Intn(days+1))
}

func (g *DataGenerator) Company() string {
	d := g.data

	if g.locale == LocaleRU {
		prefix := g.pick(d.companyPrefixes)
		switch g.rand.Intn(4) {
		case 0:
			return fmt.Sprintf("%s «%s»", prefix, g.pick(d.largeCompanies))
		case 1:
			return fmt.Sprintf("%s «%s-%s»", prefix, g.lastName(), g.lastName())
		default:
			return fmt.Sprintf("%s «%s»", prefix, g.lastName())
		}
	}

	switch g.rand.Intn(3) {
	case 0:
		return fmt.Sprintf("%s %s", g.pick(d.largeCompanies), g.pick(d.companyPrefixes))
	case 1:
		return fmt.Sprintf("%s, %s and %s", g.lastName(), g.lastName(), g.lastName())
	default:
		return fmt.Sprintf("%s %s", g.lastName(), g.pick(d.companyPrefixes))
	}
}

func (g *DataGenerator) Country() string {
	return g.pick(g.data.countries)
}

func (g *DataGenerator) City() string {
	if len(g.data.cityPrefixes) == 0 {
		return g.pick(g.data.cities)
	}
	return fmt.Sprintf("%s %s", g.pick(g.data.cityPrefixes), g.pick(g.data.cities))
}

func (g *DataGenerator) StreetName() string {
	if g.locale == LocaleRU {
		return fmt.Sprintf("%s %s", g.pick(g.data.streetPrefixes), g.pick(g.data.streets))
	}
	return fmt.Sprintf("%s %s", g.pick(g.data.streets), g.pick(g.data.streetPrefixes))
}

// BuildingNumber returns a house number of one to three digits without a
// leading zero.
func (g *DataGenerator) BuildingNumber() string {
	digits := g.IntBetween(1, 3)
	var b strings.Builder
	b.WriteByte(byte('1' + g.rand.Intn(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + g.rand.Intn(10)))
	}
	return b.String()
}

func (g *DataGenerator) Postcode() string {
	var b strings.Builder
	for i := 0; i < g.data.postcodeDigits; i++ {
		b.WriteByte(byte('0' + g.rand.Intn(10)))
	}
	return b.String()
}

// Address returns a single-line postal address.
func (g *DataGenerator) Address() string {
	if g.locale == LocaleRU {
		return fmt.Sprintf("%s, %s, д. %s, %s", g.City(), g.StreetName(), g.BuildingNumber(), g.Postcode())
	}
	return fmt.Sprintf("%s %s, %s, %s", g.BuildingNumber(), g.StreetName(), g.City(), g.Postcode())
}
