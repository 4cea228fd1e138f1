package seeder

import (
	"fmt"
	"io"

	"github.com/Lumos-Labs-HQ/flashseed/internal/dataset"
)

// TableDefinition pairs a table with its schema statement, the tables it
// references and the function that builds its rows.
type TableDefinition struct {
	Name      string
	CreateSQL string
	DependsOn []string
	Build     func(g *DataGenerator) *dataset.Dataset
}

type SeedConfig struct {
	OutputDir   string            // Directory for <table>.csv files
	Tables      []TableDefinition // Defaults to DefaultTables()
	Preview     bool              // Print each dataset after loading it
	PreviewRows int               // Rows shown per preview, <= 0 for all
	Output      io.Writer         // Preview destination, defaults to stdout
}

// PlannedTable is a definition together with the rows built for this run.
type PlannedTable struct {
	Definition TableDefinition
	Dataset    *dataset.Dataset
}

type TableResult struct {
	Name         string
	Created      bool
	SchemaError  error
	CSVPath      string
	RowsInserted int64
}

type Report struct {
	Tables []TableResult
}

func (r *Report) SchemaErrors() []TableResult {
	var failed []TableResult
	for _, t := range r.Tables {
		if t.SchemaError != nil {
			failed = append(failed, t)
		}
	}
	return failed
}

func (r *Report) RowsInserted() int64 {
	var total int64
	for _, t := range r.Tables {
		total += t.RowsInserted
	}
	return total
}

// InsertError is fatal to a run: the remaining tables are not processed.
type InsertError struct {
	Table string
	Err   error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("failed to insert rows into %s: %v", e.Table, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}
