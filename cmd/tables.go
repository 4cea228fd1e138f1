package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/flashseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type tableInfo struct {
	Name      string   `yaml:"name"`
	DependsOn []string `yaml:"depends_on,omitempty"`
	Columns   []string `yaml:"columns"`
	Rows      int      `yaml:"rows"`
	CreateSQL string   `yaml:"create_sql"`
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the demo tables in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		generator, err := seeder.NewDataGenerator(seeder.LocaleRU, 1)
		if err != nil {
			return err
		}
		plan, err := seeder.Plan(seeder.DefaultTables(), generator)
		if err != nil {
			return err
		}

		infos := make([]tableInfo, len(plan))
		for i, p := range plan {
			infos[i] = tableInfo{
				Name:      p.Definition.Name,
				DependsOn: p.Definition.DependsOn,
				Columns:   p.Dataset.ColumnNames(),
				Rows:      p.Dataset.Len(),
				CreateSQL: dedent(p.Definition.CreateSQL),
			}
		}

		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(map[string][]tableInfo{"tables": infos})
		}

		for i, info := range infos {
			color.Cyan("%d. %s", i+1, info.Name)
			fmt.Printf("   columns: %s\n", strings.Join(info.Columns, ", "))
			fmt.Printf("   rows:    %d\n", info.Rows)
			if len(info.DependsOn) > 0 {
				fmt.Printf("   after:   %s\n", strings.Join(info.DependsOn, ", "))
			}
		}
		return nil
	},
}

// dedent trims the indentation the statements carry in source.
func dedent(sql string) string {
	lines := strings.Split(strings.TrimSpace(sql), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
		if i > 0 && i < len(lines)-1 {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().Bool("yaml", false, "Print the table list as YAML")
}
