package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Auth      AuthConfig
	Simulator SimulatorConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// AuthUser is a statically configured user with a bcrypt password hash.
// When no users are configured the simulator accepts any non-empty
// credentials, matching the behavior integration clients expect from a
// mock system.
type AuthUser struct {
	Username     string
	PasswordHash string
}

// AuthConfig holds session-token settings
type AuthConfig struct {
	RequireAuthentication bool
	TokenExpiry           time.Duration
	Secret                string
	Issuer                string
	Users                 []AuthUser
}

// SimulatorConfig holds the fixed reference data the engine validates
// against and the master-data seeding switch.
type SimulatorConfig struct {
	ValidPlants            []string
	ValidVendors           []string
	SeedMaterials          bool
	DefaultStorageLocation string
	DefaultCurrency        string
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with MOCKERP_ prefix (e.g., MOCKERP_AUTH_SECRET)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	// Seeding defaults to on; viper reports false for absent keys, so the
	// default has to be registered before the read.
	v.SetDefault("simulator.seed_materials", true)
	v.SetDefault("auth.require_authentication", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("MOCKERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Auth: AuthConfig{
			RequireAuthentication: v.GetBool("auth.require_authentication"),
			TokenExpiry:           v.GetDuration("auth.token_expiry"),
			Secret:                v.GetString("auth.secret"),
			Issuer:                v.GetString("auth.issuer"),
			Users:                 loadAuthUsers(v),
		},
		Simulator: SimulatorConfig{
			ValidPlants:            v.GetStringSlice("simulator.valid_plants"),
			ValidVendors:           v.GetStringSlice("simulator.valid_vendors"),
			SeedMaterials:          v.GetBool("simulator.seed_materials"),
			DefaultStorageLocation: v.GetString("simulator.default_storage_location"),
			DefaultCurrency:        v.GetString("simulator.default_currency"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadAuthUsers(v *viper.Viper) []AuthUser {
	var raw []map[string]any
	if err := v.UnmarshalKey("auth.users", &raw); err != nil {
		return nil
	}
	users := make([]AuthUser, 0, len(raw))
	for _, entry := range raw {
		username, _ := entry["username"].(string)
		hash, _ := entry["password_hash"].(string)
		if username != "" && hash != "" {
			users = append(users, AuthUser{Username: username, PasswordHash: hash})
		}
	}
	return users
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "mockerp"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}
	if cfg.Auth.TokenExpiry == 0 {
		cfg.Auth.TokenExpiry = 60 * time.Minute
	}
	if cfg.Auth.Secret == "" {
		// Development-only fallback; production requires an explicit secret.
		cfg.Auth.Secret = "mockerp-development-secret"
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "mockerp"
	}
	if len(cfg.Simulator.ValidPlants) == 0 {
		cfg.Simulator.ValidPlants = []string{"PLANT_1"}
	}
	if len(cfg.Simulator.ValidVendors) == 0 {
		cfg.Simulator.ValidVendors = []string{"VENDOR001"}
	}
	if cfg.Simulator.DefaultStorageLocation == "" {
		cfg.Simulator.DefaultStorageLocation = "A01"
	}
	if cfg.Simulator.DefaultCurrency == "" {
		cfg.Simulator.DefaultCurrency = "USD"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Auth.TokenExpiry < 0 {
		return fmt.Errorf("auth.token_expiry cannot be negative")
	}

	if c.App.Env == "production" {
		if c.Auth.Secret == "" || c.Auth.Secret == "mockerp-development-secret" {
			return fmt.Errorf("auth.secret is required in production")
		}
		if len(c.Auth.Secret) < 32 {
			return fmt.Errorf("auth.secret must be at least 32 characters in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}
