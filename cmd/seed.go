package cmd

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/flashseed/internal/config"
	"github.com/Lumos-Labs-HQ/flashseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the demo tables, export them to CSV and load them",
	Long: `
Drop and recreate every demo table, write its rows to <table>.csv and insert
them, one table at a time in dependency order.

A table that cannot be recreated is reported and skipped over. A failed CSV
write or insert stops the run.

Examples:
  flashseed seed
  flashseed seed --out data --seed 42
  flashseed seed --preview=false
  flashseed seed --preview-rows 5`,
	Args:    cobra.NoArgs,
	PreRunE: bindGenerationFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		generator, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		adapter, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		preview, _ := cmd.Flags().GetBool("preview")
		previewRows, _ := cmd.Flags().GetInt("preview-rows")

		s := seeder.New(adapter, generator, seeder.SeedConfig{
			OutputDir:   cfg.OutputDir,
			Preview:     preview,
			PreviewRows: previewRows,
			Output:      os.Stdout,
		})

		report, err := s.Seed(ctx)
		if report != nil {
			printReport(report)
		}
		return err
	},
}

func printReport(report *seeder.Report) {
	fmt.Println()
	color.Cyan("📊 Summary:")
	for _, t := range report.Tables {
		switch {
		case t.SchemaError != nil:
			color.Yellow("   ⚠️  %-22s %4d rows (not recreated)", t.Name, t.RowsInserted)
		case t.CSVPath == "" || t.RowsInserted == 0:
			color.Red("   ❌ %-22s not loaded", t.Name)
		default:
			color.Green("   ✅ %-22s %4d rows", t.Name, t.RowsInserted)
		}
	}
	fmt.Printf("   Total rows inserted: %d\n", report.RowsInserted())
}

func init() {
	rootCmd.AddCommand(seedCmd)
	addGenerationFlags(seedCmd)
	seedCmd.Flags().BoolP("preview", "p", true, "Print each table after loading it")
	seedCmd.Flags().Int("preview-rows", 10, "Rows shown per preview, 0 for all")
}
