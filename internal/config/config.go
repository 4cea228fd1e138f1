package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderPostgres = "postgresql"
	ProviderSQLite   = "sqlite"
)

// ErrConfig matches every error produced while loading or validating settings.
var ErrConfig = errors.New("configuration error")

// Error describes a single missing or malformed setting.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrConfig
}

type Config struct {
	Provider  string `json:"db_provider" mapstructure:"db_provider"`
	Name      string `json:"db_name" mapstructure:"db_name"`
	User      string `json:"db_user" mapstructure:"db_user"`
	Password  Secret `json:"db_pass" mapstructure:"db_pass"`
	Host      string `json:"db_host" mapstructure:"db_host"`
	Port      int    `json:"db_port" mapstructure:"-"`
	SSLMode   string `json:"db_sslmode,omitempty" mapstructure:"db_sslmode"`
	Echo      bool   `json:"db_echo" mapstructure:"db_echo"`
	OutputDir string `json:"output_dir" mapstructure:"output_dir"`
	Locale    string `json:"locale" mapstructure:"locale"`
	FakerSeed int64  `json:"faker_seed" mapstructure:"faker_seed"`
}

// Keys lists every setting the loader understands. Each one is also read from
// the upper-cased environment variable of the same name.
var Keys = []string{
	"db_provider", "db_name", "db_user", "db_pass", "db_host", "db_port",
	"db_sslmode", "db_echo", "output_dir", "locale", "faker_seed",
}

var supportedLocales = []string{"ru_RU", "en_US"}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("db_provider", ProviderPostgres)
	v.SetDefault("db_echo", true)
	v.SetDefault("output_dir", ".")
	v.SetDefault("locale", "ru_RU")
	v.SetDefault("faker_seed", 0)
}

// Load reads settings from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	return load(v, (*Config).Validate)
}

// LoadGeneration reads the settings needed to build datasets without a
// database. Connection settings are decoded but not checked.
func LoadGeneration(v *viper.Viper) (*Config, error) {
	return load(v, (*Config).validateGeneration)
}

func load(v *viper.Viper, validate func(*Config) error) (*Config, error) {
	for _, key := range Keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Field: "config", Reason: fmt.Sprintf("could not be decoded: %v", err)}
	}

	var errs []error
	if raw := strings.TrimSpace(v.GetString("db_port")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, &Error{Field: "db_port", Reason: fmt.Sprintf("must be an integer, got %q", raw)})
		}
		cfg.Port = port
	}

	cfg.Provider = normalizeProvider(cfg.Provider)

	if err := validate(&cfg); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}

func normalizeProvider(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "postgresql", "postgres", "pg":
		return ProviderPostgres
	case "sqlite", "sqlite3":
		return ProviderSQLite
	default:
		return provider
	}
}

// Validate reports every missing or out-of-range setting at once.
func (c *Config) Validate() error {
	var errs []error
	missing := func(field string) {
		errs = append(errs, &Error{Field: field, Reason: "is required"})
	}

	switch c.Provider {
	case ProviderPostgres:
		if c.Name == "" {
			missing("db_name")
		}
		if c.User == "" {
			missing("db_user")
		}
		if c.Password.Value() == "" {
			missing("db_pass")
		}
		if c.Host == "" {
			missing("db_host")
		}
		if c.Port == 0 {
			missing("db_port")
		} else if c.Port < 0 || c.Port > 65535 {
			errs = append(errs, &Error{Field: "db_port", Reason: fmt.Sprintf("must be between 1 and 65535, got %d", c.Port)})
		}
	case ProviderSQLite:
		if c.Name == "" {
			missing("db_name")
		}
	default:
		errs = append(errs, &Error{
			Field:  "db_provider",
			Reason: fmt.Sprintf("%q is not supported (use %s or %s)", c.Provider, ProviderPostgres, ProviderSQLite),
		})
	}

	if err := c.validateGeneration(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c *Config) validateGeneration() error {
	var errs []error
	if !isSupportedLocale(c.Locale) {
		errs = append(errs, &Error{
			Field:  "locale",
			Reason: fmt.Sprintf("%q is not supported (use one of %s)", c.Locale, strings.Join(supportedLocales, ", ")),
		})
	}
	if c.OutputDir == "" {
		errs = append(errs, &Error{Field: "output_dir", Reason: "is required"})
	}
	return errors.Join(errs...)
}

func isSupportedLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// DSN returns the connection string handed to the database adapter. It holds
// the password in clear text and must never be printed; use RedactedDSN.
func (c *Config) DSN() string {
	if c.Provider == ProviderSQLite {
		return c.Name
	}
	return c.postgresURL(url.UserPassword(c.User, c.Password.Value())).String()
}

func (c *Config) RedactedDSN() string {
	if c.Provider == ProviderSQLite {
		return c.Name
	}
	return c.postgresURL(url.UserPassword(c.User, c.Password.Value())).Redacted()
}

func (c *Config) postgresURL(user *url.Userinfo) *url.URL {
	u := &url.URL{
		Scheme: "postgres",
		User:   user,
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		q := url.Values{}
		q.Set("sslmode", c.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u
}

func (c *Config) String() string {
	return fmt.Sprintf("%s %s", c.Provider, c.RedactedDSN())
}
