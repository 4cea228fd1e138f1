package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/flashseed/internal/config"
	"github.com/Lumos-Labs-HQ/flashseed/internal/database"
	"github.com/Lumos-Labs-HQ/flashseed/internal/database/common"
	"github.com/Lumos-Labs-HQ/flashseed/internal/seeder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generationFlags maps command flags onto config keys. They are bound when a
// command runs since several commands share the same flag names.
var generationFlags = map[string]string{
	"out":    "output_dir",
	"seed":   "faker_seed",
	"locale": "locale",
}

func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Directory for <table>.csv files (default \".\")")
	cmd.Flags().Int64("seed", 0, "Seed for generated data, 0 picks one from the clock")
	cmd.Flags().String("locale", "", "Locale for generated data (ru_RU or en_US)")
}

func bindGenerationFlags(cmd *cobra.Command, args []string) error {
	for flag, key := range generationFlags {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func newGenerator(cfg *config.Config) (*seeder.DataGenerator, error) {
	generator, err := seeder.NewDataGenerator(cfg.Locale, cfg.FakerSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to create data generator: %w", err)
	}
	return generator, nil
}

func connect(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, error) {
	var log *common.StatementLog
	if cfg.Echo {
		log = common.NewStatementLog(os.Stderr)
	}

	adapter := database.NewAdapter(cfg.Provider, log)
	if err := adapter.Connect(ctx, cfg.DSN()); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg, err)
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg, err)
	}
	return adapter, nil
}
