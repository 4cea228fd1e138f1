package dataset

import (
	"fmt"
	"strconv"
	"time"
)

type Column struct {
	Name   string
	Values []interface{}
}

// Dataset is a table held column by column. Every column must have the same
// number of values.
type Dataset struct {
	Table   string
	Columns []Column
}

func New(table string) *Dataset {
	return &Dataset{Table: table}
}

// Add appends a column and returns the dataset for chaining.
func (d *Dataset) Add(name string, values []interface{}) *Dataset {
	d.Columns = append(d.Columns, Column{Name: name, Values: values})
	return d
}

func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// Len is the number of rows, taken from the first column.
func (d *Dataset) Len() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

func (d *Dataset) Column(name string) (Column, bool) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

func (d *Dataset) Validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("dataset %s has no columns", d.Table)
	}

	seen := make(map[string]bool, len(d.Columns))
	rows := d.Len()
	for _, col := range d.Columns {
		if col.Name == "" {
			return fmt.Errorf("dataset %s has an unnamed column", d.Table)
		}
		if seen[col.Name] {
			return fmt.Errorf("dataset %s has duplicate column %s", d.Table, col.Name)
		}
		seen[col.Name] = true

		if len(col.Values) != rows {
			return fmt.Errorf("dataset %s: column %s has %d values, expected %d",
				d.Table, col.Name, len(col.Values), rows)
		}
	}
	return nil
}

// Rows transposes the columns into row order.
func (d *Dataset) Rows() [][]interface{} {
	n := d.Len()
	rows := make([][]interface{}, n)
	for i := 0; i < n; i++ {
		row := make([]interface{}, len(d.Columns))
		for j, col := range d.Columns {
			row[j] = col.Values[i]
		}
		rows[i] = row
	}
	return rows
}

// Records is Rows rendered as text, the form written to CSV.
func (d *Dataset) Records() [][]string {
	rows := d.Rows()
	records := make([][]string, len(rows))
	for i, row := range rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = FormatValue(v)
		}
		records[i] = record
	}
	return records
}

func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Ints returns 1..n, the shape every id column takes.
func Ints(n int) []interface{} {
	values := make([]interface{}, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func Strings(values ...string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
