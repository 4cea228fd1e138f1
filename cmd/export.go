package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/flashseed/internal/config"
	"github.com/Lumos-Labs-HQ/flashseed/internal/dataset"
	"github.com/Lumos-Labs-HQ/flashseed/internal/export"
	"github.com/Lumos-Labs-HQ/flashseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the demo tables to CSV without touching a database",
	Long: `
Generate every demo table and write it to <table>.csv. No database settings
are needed.

Examples:
  flashseed export
  flashseed export --out data --seed 42 --locale en_US`,
	Args:    cobra.NoArgs,
	PreRunE: bindGenerationFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGeneration(viper.GetViper())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		generator, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		plan, err := seeder.Plan(seeder.DefaultTables(), generator)
		if err != nil {
			return err
		}

		datasets := make([]*dataset.Dataset, len(plan))
		for i, p := range plan {
			datasets[i] = p.Dataset
		}

		paths, err := export.WriteAll(datasets, cfg.OutputDir)
		if err != nil {
			return err
		}

		for i, path := range paths {
			fmt.Printf("   %s (%d rows)\n", path, datasets[i].Len())
		}
		color.Green("✅ Export completed: %d files in %s", len(paths), cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addGenerationFlags(exportCmd)
}
