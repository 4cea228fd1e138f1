package template

import (
	"reflect"
	"strings"
	"testing"

	"github.com/joho/godotenv"
)

func TestEnvTemplateParses(t *testing.T) {
	tests := []struct {
		dbType   DatabaseType
		provider string
		wantKeys []string
	}{
		{PostgreSQL, "postgresql", []string{"DB_NAME", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT"}},
		{SQLite, "sqlite", []string{"DB_NAME"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dbType), func(t *testing.T) {
			env, err := godotenv.Unmarshal(NewProjectTemplate(tt.dbType).GetEnvTemplate())
			if err != nil {
				t.Fatalf("Template does not parse: %v", err)
			}
			if env["DB_PROVIDER"] != tt.provider {
				t.Errorf("Expected DB_PROVIDER=%s, got %q", tt.provider, env["DB_PROVIDER"])
			}
			for _, key := range tt.wantKeys {
				if _, ok := env[key]; !ok {
					t.Errorf("Template is missing %s", key)
				}
			}
			if env["LOCALE"] != "ru_RU" {
				t.Errorf("Expected default locale ru_RU, got %q", env["LOCALE"])
			}
		})
	}

	sqlite := NewProjectTemplate(SQLite).GetEnvTemplate()
	if strings.Contains(sqlite, "DB_PASS") {
		t.Error("SQLite template should not ask for a password")
	}
}

func TestMergeEnvKeepsExistingValues(t *testing.T) {
	existing := "DB_NAME=warehouse\nDB_PASS=hunter2"
	merged, added, err := NewProjectTemplate(PostgreSQL).MergeEnv(existing)
	if err != nil {
		t.Fatalf("MergeEnv failed: %v", err)
	}

	if !strings.HasPrefix(merged, existing+"\n") {
		t.Errorf("Existing content was modified:\n%s", merged)
	}

	env, err := godotenv.Unmarshal(merged)
	if err != nil {
		t.Fatalf("Merged file does not parse: %v", err)
	}
	if env["DB_NAME"] != "warehouse" || env["DB_PASS"] != "hunter2" {
		t.Errorf("Existing values were overwritten: %v", env)
	}
	if env["DB_HOST"] != "localhost" {
		t.Errorf("Expected DB_HOST to be added, got %q", env["DB_HOST"])
	}

	for _, key := range added {
		if key == "DB_NAME" || key == "DB_PASS" {
			t.Errorf("%s was reported as added", key)
		}
	}
}

func TestMergeEnvNothingMissing(t *testing.T) {
	tmpl := NewProjectTemplate(SQLite)
	full := tmpl.GetEnvTemplate()

	merged, added, err := tmpl.MergeEnv(full)
	if err != nil {
		t.Fatalf("MergeEnv failed: %v", err)
	}
	if merged != full {
		t.Errorf("Expected file to be unchanged, got:\n%s", merged)
	}
	if len(added) != 0 {
		t.Errorf("Expected no keys added, got %v", added)
	}
}

func TestValidateDatabaseType(t *testing.T) {
	got := []DatabaseType{
		ValidateDatabaseType("sqlite3"),
		ValidateDatabaseType("postgres"),
		ValidateDatabaseType("oracle"),
	}
	want := []DatabaseType{SQLite, PostgreSQL, PostgreSQL}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
