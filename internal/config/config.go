package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"pet-admin-console/internal/debounce"
)

// Config es la configuración raíz (gateway y consola).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Backend  BackendConfig  `yaml:"backend"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Search   SearchConfig   `yaml:"search"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// BackendConfig apunta al backend REST (owners/pets/auth/statistics).
// Sin URL se usa el backend in-memory (modo dev).
type BackendConfig struct {
	URL     string        `yaml:"url"     env:"BACKEND_URL"`
	Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig: sin DSN las sesiones viven en memoria.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"       env:"DB_DSN"`
	MaxConns int32  `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
	// Migrate no usa env-default: cleanenv trata false como "sin valor".
	Migrate  bool   `yaml:"migrate"   env:"DB_MIGRATE"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl"            env:"SESSION_TTL"            env-default:"24h"`
	PurgeInterval time.Duration `yaml:"purge_interval" env:"SESSION_PURGE_INTERVAL" env-default:"10m"`
}

type SearchConfig struct {
	// 0 => búsqueda inmediata en cada keystroke. Default en defaults().
	Debounce time.Duration `yaml:"debounce" env:"SEARCH_DEBOUNCE"`
}

type AuthConfig struct {
	// DevMode habilita X-Debug-User / X-Debug-Roles (como X-Debug-User-ID).
	DevMode bool `yaml:"dev_mode" env:"AUTH_DEV_MODE" env-default:"false"`

	// Solo para el backend in-memory: firma de tokens y admin inicial.
	DevJWTSecret     string `yaml:"dev_jwt_secret"     env:"AUTH_DEV_JWT_SECRET"     env-default:"dev-secret-change-me"`
	DevAdminUsername string `yaml:"dev_admin_username" env:"AUTH_DEV_ADMIN_USERNAME" env-default:"admin"`
	DevAdminPassword string `yaml:"dev_admin_password" env:"AUTH_DEV_ADMIN_PASSWORD" env-default:"admin123"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	App    string `yaml:"app"    env:"APP_NAME"   env-default:"pet-admin-console"`
	// File: la consola TUI escribe logs aquí (stdout lo usa la pantalla).
	File string `yaml:"file" env:"LOG_FILE"`
}

// defaults cubre los campos cuyo cero es un valor válido; el resto usa
// env-default.
func defaults() Config {
	return Config{
		Database: DatabaseConfig{Migrate: true},
		Search:   SearchConfig{Debounce: debounce.DefaultInterval},
	}
}

// Load lee YAML (CONFIG_PATH o ./config.yaml si existe) + ENV + defaults.
// Prioridad: ENV > YAML > defaults.
func Load() (*Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port out of range: %d", c.Server.Port))
	}
	if u := strings.TrimSpace(c.Backend.URL); u != "" {
		if _, err := url.ParseRequestURI(u); err != nil {
			errs = append(errs, fmt.Errorf("backend url: %w", err))
		}
	}
	if c.Search.Debounce < 0 {
		errs = append(errs, errors.New("search debounce must be >= 0"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session ttl must be > 0"))
	}
	if c.Backend.URL == "" && strings.TrimSpace(c.Auth.DevJWTSecret) == "" {
		errs = append(errs, errors.New("dev backend requires AUTH_DEV_JWT_SECRET"))
	}

	return errors.Join(errs...)
}

// UsesDevBackend indica que no hay backend REST configurado.
func (c *Config) UsesDevBackend() bool {
	return strings.TrimSpace(c.Backend.URL) == ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
