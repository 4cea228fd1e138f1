package seeder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Lumos-Labs-HQ/flashseed/internal/database"
	"github.com/Lumos-Labs-HQ/flashseed/internal/database/common"
	"github.com/Lumos-Labs-HQ/flashseed/internal/dataset"
	"github.com/Lumos-Labs-HQ/flashseed/internal/export"
	"github.com/fatih/color"
)

type Seeder struct {
	adapter    database.DatabaseAdapter
	generator  *DataGenerator
	seedConfig SeedConfig
}

func New(adapter database.DatabaseAdapter, generator *DataGenerator, seedConfig SeedConfig) *Seeder {
	if seedConfig.Tables == nil {
		seedConfig.Tables = DefaultTables()
	}
	if seedConfig.OutputDir == "" {
		seedConfig.OutputDir = "."
	}
	if seedConfig.Output == nil {
		seedConfig.Output = os.Stdout
	}
	return &Seeder{
		adapter:    adapter,
		generator:  generator,
		seedConfig: seedConfig,
	}
}

// Plan resolves the insertion order and builds every dataset. It touches
// neither the database nor the filesystem.
func Plan(tables []TableDefinition, generator *DataGenerator) ([]PlannedTable, error) {
	graph := NewDependencyGraph()
	byName := make(map[string]TableDefinition, len(tables))

	for i := range tables {
		table := tables[i]
		if !common.IsValidIdentifier(table.Name) {
			return nil, fmt.Errorf("invalid table name: %s", table.Name)
		}
		if table.Build == nil {
			return nil, fmt.Errorf("table %s has no row builder", table.Name)
		}
		if err := graph.AddTable(&table); err != nil {
			return nil, err
		}
		byName[table.Name] = table
	}

	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	// Datasets are built in declaration order so a given seed always yields
	// the same values for the same table.
	built := make(map[string]*dataset.Dataset, len(tables))
	for _, table := range tables {
		ds := table.Build(generator)
		if ds == nil {
			return nil, fmt.Errorf("table %s built no dataset", table.Name)
		}
		ds.Table = table.Name
		if err := ds.Validate(); err != nil {
			return nil, err
		}
		for _, col := range ds.Columns {
			if !common.IsValidIdentifier(col.Name) {
				return nil, fmt.Errorf("invalid column name in table %s: %s", table.Name, col.Name)
			}
		}
		built[table.Name] = ds
	}

	plan := make([]PlannedTable, len(order))
	for i, name := range order {
		plan[i] = PlannedTable{Definition: byName[name], Dataset: built[name]}
	}
	return plan, nil
}

// Seed recreates, exports and loads every table in order.
//
// A failed recreate is logged, recorded in the report and skipped over. A
// failed export or insert stops the run and is returned with the partial
// report.
func (s *Seeder) Seed(ctx context.Context) (*Report, error) {
	color.Cyan("🌱 Starting database seeding...")

	plan, err := Plan(s.seedConfig.Tables, s.generator)
	if err != nil {
		return nil, fmt.Errorf("failed to plan seed: %w", err)
	}

	names := make([]string, len(plan))
	for i, p := range plan {
		names[i] = p.Definition.Name
	}
	color.Green("📊 Found %d tables", len(plan))
	color.Cyan("📋 Insertion order: %s", strings.Join(names, " → "))
	fmt.Println()

	if err := os.MkdirAll(s.seedConfig.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &Report{}
	for _, p := range plan {
		result, err := s.seedTable(ctx, p)
		report.Tables = append(report.Tables, result)
		if err != nil {
			color.Red("❌ %v", err)
			return report, err
		}
	}

	if failed := report.SchemaErrors(); len(failed) > 0 {
		color.Yellow("\n⚠️  Seeding finished with %d table(s) not recreated", len(failed))
		return report, nil
	}

	color.Green("\n✅ Database seeding completed successfully!")
	return report, nil
}

func (s *Seeder) seedTable(ctx context.Context, p PlannedTable) (TableResult, error) {
	def, ds := p.Definition, p.Dataset
	result := TableResult{Name: def.Name}

	color.Cyan("  📝 Seeding %s (%d records)...", def.Name, ds.Len())

	if err := s.adapter.RecreateTable(ctx, def.Name, def.CreateSQL); err != nil {
		result.SchemaError = err
		color.Red("  ❌ Error creating table %s: %v", def.Name, err)
	} else {
		result.Created = true
		color.Green("  ✅ Table %s created successfully.", def.Name)
	}

	path := export.CSVPath(s.seedConfig.OutputDir, def.Name)
	if err := export.WriteCSV(ds, path); err != nil {
		return result, fmt.Errorf("failed to export %s: %w", def.Name, err)
	}
	result.CSVPath = path

	n, err := s.adapter.InsertRows(ctx, def.Name, ds.ColumnNames(), ds.Rows())
	if err != nil {
		return result, &InsertError{Table: def.Name, Err: err}
	}
	result.RowsInserted = n
	color.Green("  ✅ %s seeded successfully (%d rows, %s)", def.Name, n, path)

	if s.seedConfig.Preview {
		if err := s.preview(ds); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (s *Seeder) preview(ds *dataset.Dataset) error {
	w := s.seedConfig.Output
	if _, err := fmt.Fprintf(w, "%s DataFrame:\n", capitalize(ds.Table)); err != nil {
		return err
	}
	if err := dataset.Preview(w, ds, s.seedConfig.PreviewRows); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
