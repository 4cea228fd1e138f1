package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/flashseed/internal/config"
	"github.com/Lumos-Labs-HQ/flashseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which demo tables exist and how many rows they hold",
	Long: `Connect to the database and report, for every demo table:
- whether the table exists
- its current row count
- the row count a fresh seed would produce`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
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

		ctx := cmd.Context()
		adapter, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		color.Cyan("📋 Tables in %s:", cfg)
		seeded := 0
		for _, p := range plan {
			name := p.Definition.Name
			expected := int64(p.Dataset.Len())

			exists, err := adapter.CheckTableExists(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to check table %s: %w", name, err)
			}
			if !exists {
				color.Red("   ❌ %-22s missing", name)
				continue
			}

			count, err := adapter.CountRows(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to count rows in %s: %w", name, err)
			}
			if count == expected {
				seeded++
				color.Green("   ✅ %-22s %4d/%d rows", name, count, expected)
			} else {
				color.Yellow("   ⚠️  %-22s %4d/%d rows", name, count, expected)
			}
		}

		fmt.Printf("\n%d of %d tables match a fresh seed\n", seeded, len(plan))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
