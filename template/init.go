package template

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

type DatabaseType string

const (
	SQLite     DatabaseType = "sqlite"
	PostgreSQL DatabaseType = "postgresql"
)

type envEntry struct {
	key   string
	value string
}

type ProjectTemplate struct {
	DatabaseType DatabaseType
}

var connectionEntries = map[DatabaseType][]envEntry{
	SQLite: {
		{"DB_PROVIDER", "sqlite"},
		{"DB_NAME", "./flashseed.db"},
	},
	PostgreSQL: {
		{"DB_PROVIDER", "postgresql"},
		{"DB_NAME", "shop"},
		{"DB_USER", "postgres"},
		{"DB_PASS", "postgres"},
		{"DB_HOST", "localhost"},
		{"DB_PORT", "5432"},
		{"DB_SSLMODE", "disable"},
	},
}

var generationEntries = []envEntry{
	{"DB_ECHO", "true"},
	{"OUTPUT_DIR", "."},
	{"LOCALE", "ru_RU"},
	{"FAKER_SEED", "0"},
}

func NewProjectTemplate(dbType DatabaseType) *ProjectTemplate {
	return &ProjectTemplate{DatabaseType: dbType}
}

func (pt *ProjectTemplate) entries() []envEntry {
	out := append([]envEntry{}, connectionEntries[pt.DatabaseType]...)
	return append(out, generationEntries...)
}

func (pt *ProjectTemplate) GetEnvTemplate() string {
	return render(pt.entries())
}

// MergeEnv appends to existing every template key it does not define yet.
// Existing lines are kept as they are. The second result lists the keys added.
func (pt *ProjectTemplate) MergeEnv(existing string) (string, []string, error) {
	defined, err := godotenv.Unmarshal(existing)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse existing env file: %w", err)
	}

	var missing []envEntry
	var added []string
	for _, e := range pt.entries() {
		if _, ok := defined[e.key]; !ok {
			missing = append(missing, e)
			added = append(added, e.key)
		}
	}
	if len(missing) == 0 {
		return existing, nil, nil
	}

	if len(existing) > 0 && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	return existing + "\n# Added by flashseed\n" + render(missing), added, nil
}

func render(entries []envEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s=%s\n", e.key, e.value)
	}
	return b.String()
}

func ValidateDatabaseType(dbType string) DatabaseType {
	types := map[string]DatabaseType{
		"sqlite":     SQLite,
		"sqlite3":    SQLite,
		"postgresql": PostgreSQL,
		"postgres":   PostgreSQL,
	}

	if dt, exists := types[dbType]; exists {
		return dt
	}
	return PostgreSQL
}
