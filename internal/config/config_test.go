package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range Keys {
		t.Setenv(strings.ToUpper(key), "")
	}
	for k, v := range values {
		t.Setenv(k, v)
	}
}

func validEnv() map[string]string {
	return map[string]string{
		"DB_NAME": "shop",
		"DB_USER": "seed",
		"DB_PASS": "s3cr3t",
		"DB_HOST": "localhost",
		"DB_PORT": "5432",
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	setEnv(t, validEnv())

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}

	if cfg.Provider != ProviderPostgres {
		t.Errorf("Expected provider to be '%s', got '%s'", ProviderPostgres, cfg.Provider)
	}
	if cfg.Port != 5432 {
		t.Errorf("Expected port 5432, got %d", cfg.Port)
	}
	if cfg.Password.Value() != "s3cr3t" {
		t.Errorf("Expected password to round-trip, got '%s'", cfg.Password.Value())
	}
	if cfg.OutputDir != "." {
		t.Errorf("Expected output_dir to default to '.', got '%s'", cfg.OutputDir)
	}
	if cfg.Locale != "ru_RU" {
		t.Errorf("Expected locale to default to 'ru_RU', got '%s'", cfg.Locale)
	}
	if !cfg.Echo {
		t.Error("Expected SQL echo to be enabled by default")
	}
}

func TestLoadMissingPassword(t *testing.T) {
	env := validEnv()
	delete(env, "DB_PASS")
	setEnv(t, env)

	cfg, err := LoadFrom(viper.New())
	if err == nil {
		t.Fatalf("Expected a configuration error, got config %v", cfg)
	}
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Expected error to match ErrConfig, got %v", err)
	}

	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *config.Error in chain, got %T", err)
	}
	if cfgErr.Field != "db_pass" {
		t.Errorf("Expected missing field 'db_pass', got '%s'", cfgErr.Field)
	}
}

func TestLoadReportsEveryMissingField(t *testing.T) {
	setEnv(t, nil)

	_, err := LoadFrom(viper.New())
	if err == nil {
		t.Fatal("Expected a configuration error")
	}

	for _, field := range []string{"db_name", "db_user", "db_pass", "db_host", "db_port"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Expected error to mention %s, got: %v", field, err)
		}
	}
}

func TestLoadMalformedPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{name: "not a number", port: "five", want: "must be an integer"},
		{name: "out of range", port: "70000", want: "between 1 and 65535"},
		{name: "negative", port: "-1", want: "between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnv()
			env["DB_PORT"] = tt.port
			setEnv(t, env)

			_, err := LoadFrom(viper.New())
			if err == nil {
				t.Fatalf("Expected error for port %q", tt.port)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadSQLiteNeedsOnlyName(t *testing.T) {
	setEnv(t, map[string]string{
		"DB_PROVIDER": "sqlite3",
		"DB_NAME":     "seed.db",
	})

	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("Expected sqlite config to load, got %v", err)
	}
	if cfg.Provider != ProviderSQLite {
		t.Errorf("Expected provider to normalize to '%s', got '%s'", ProviderSQLite, cfg.Provider)
	}
	if cfg.DSN() != "seed.db" {
		t.Errorf("Expected DSN 'seed.db', got '%s'", cfg.DSN())
	}
}

func TestLoadRejectsUnknownProviderAndLocale(t *testing.T) {
	env := validEnv()
	env["DB_PROVIDER"] = "oracle"
	env["LOCALE"] = "fr_FR"
	setEnv(t, env)

	_, err := LoadFrom(viper.New())
	if err == nil {
		t.Fatal("Expected error for unsupported provider and locale")
	}
	if !strings.Contains(err.Error(), "db_provider") || !strings.Contains(err.Error(), "locale") {
		t.Errorf("Expected both db_provider and locale in error, got %v", err)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	setEnv(t, map[string]string{"DB_PASS": "from-env"})

	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "db_name: shop\ndb_user: seed\ndb_host: db.internal\ndb_port: 6543\nfaker_seed: 42\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}
	if cfg.Host != "db.internal" || cfg.Port != 6543 {
		t.Errorf("Expected db.internal:6543, got %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.FakerSeed != 42 {
		t.Errorf("Expected faker_seed 42, got %d", cfg.FakerSeed)
	}
	if cfg.Password.Value() != "from-env" {
		t.Errorf("Expected password from environment, got '%s'", cfg.Password.Value())
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Provider: ProviderPostgres,
		Name:     "shop",
		User:     "seed",
		Password: Secret("p@ss word"),
		Host:     "localhost",
		Port:     5432,
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "postgres://seed:") || !strings.HasSuffix(dsn, "@localhost:5432/shop?sslmode=disable") {
		t.Errorf("Unexpected DSN: %s", dsn)
	}
	if strings.Contains(cfg.RedactedDSN(), "p@ss") {
		t.Errorf("Expected redacted DSN to hide password, got %s", cfg.RedactedDSN())
	}
}

func TestPasswordNeverPrinted(t *testing.T) {
	cfg := &Config{
		Provider: ProviderPostgres,
		Name:     "shop",
		User:     "seed",
		Password: Secret("hunter2"),
		Host:     "localhost",
		Port:     5432,
	}

	outputs := map[string]string{
		"String": cfg.String(),
		"%v":     fmt.Sprintf("%v", *cfg),
		"%+v":    fmt.Sprintf("%+v", *cfg),
		"%#v":    fmt.Sprintf("%#v", *cfg),
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	outputs["json"] = string(data)

	for name, out := range outputs {
		if strings.Contains(out, "hunter2") {
			t.Errorf("%s leaked the password: %s", name, out)
		}
	}
}

func TestLoadGenerationSkipsConnection(t *testing.T) {
	setEnv(t, map[string]string{"OUTPUT_DIR": "out", "FAKER_SEED": "42"})

	cfg, err := LoadGeneration(viper.New())
	if err != nil {
		t.Fatalf("Expected generation settings to load without a database, got %v", err)
	}
	if cfg.OutputDir != "out" || cfg.FakerSeed != 42 || cfg.Locale != "ru_RU" {
		t.Errorf("Unexpected settings: %+v", cfg)
	}

	if _, err := LoadFrom(viper.New()); err == nil {
		t.Error("Expected the full loader to require connection settings")
	}

	setEnv(t, map[string]string{"LOCALE": "fr_FR"})
	if _, err := LoadGeneration(viper.New()); !errors.Is(err, ErrConfig) {
		t.Errorf("Expected locale to be validated, got %v", err)
	}
}
