package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/flashseed/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .env file with the settings flashseed reads",
	Long: `Write a .env template for the chosen database. Keys already present in an
existing file are left untouched and only missing ones are appended.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbType, err := initDatabaseType()
		if err != nil {
			return err
		}

		return handleEnvFile(template.NewProjectTemplate(dbType), envFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize for a SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize for a PostgreSQL database (default unless DB_PROVIDER says otherwise)")
}

// initDatabaseType picks the template from the flags, then from db_provider.
func initDatabaseType() (template.DatabaseType, error) {
	switch {
	case sqliteFlag && postgresqlFlag:
		return "", fmt.Errorf("please specify only one database type (--sqlite or --postgresql)")
	case sqliteFlag:
		return template.SQLite, nil
	case postgresqlFlag:
		return template.PostgreSQL, nil
	}

	if err := viper.BindEnv("db_provider"); err != nil {
		return "", err
	}
	return template.ValidateDatabaseType(strings.ToLower(viper.GetString("db_provider"))), nil
}

func handleEnvFile(tmpl *template.ProjectTemplate, envPath string) error {
	existing, err := os.ReadFile(envPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", envPath, err)
		}
		if err := os.WriteFile(envPath, []byte(tmpl.GetEnvTemplate()), 0600); err != nil {
			return fmt.Errorf("failed to create %s: %w", envPath, err)
		}
		color.Green("✅ Created %s for %s", envPath, tmpl.DatabaseType)
		printNextSteps(envPath)
		return nil
	}

	merged, added, err := tmpl.MergeEnv(string(existing))
	if err != nil {
		return err
	}
	if len(added) == 0 {
		color.Cyan("ℹ️  %s already has every setting", envPath)
		return nil
	}

	if err := os.WriteFile(envPath, []byte(merged), 0600); err != nil {
		return fmt.Errorf("failed to update %s: %w", envPath, err)
	}
	color.Green("✅ Added %d setting(s) to %s:", len(added), envPath)
	for _, key := range added {
		fmt.Printf("   %s\n", key)
	}
	printNextSteps(envPath)
	return nil
}

func printNextSteps(envPath string) {
	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   edit %s                 # Fill in your connection settings\n", envPath)
	fmt.Printf("   flashseed seed             # Recreate and load the demo tables\n")
	fmt.Printf("   flashseed status           # Check what was loaded\n")
}
