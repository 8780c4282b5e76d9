// Package config carga la configuración del backoffice desde YAML con
// overrides por variables de entorno. La presencia de una DSN de base
// decide el modo del gateway: configurado o fixtures.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		CacheTTL           string   `yaml:"cache_ttl"`
	} `yaml:"server"`

	Database struct {
		// DSN vacía = modo no configurado (fixtures).
		DSN             string `yaml:"dsn"`
		MaxConns        int    `yaml:"max_conns"`
		MinConns        int    `yaml:"min_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		Migrate         bool   `yaml:"migrate"`
	} `yaml:"database"`

	Cache struct {
		Driver   string `yaml:"driver"` // memory | redis
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"cache"`

	Storage struct {
		Kind          string `yaml:"kind"` // filesystem | s3 | memory
		Dir           string `yaml:"dir"`
		PublicBaseURL string `yaml:"public_base_url"`
		Bucket        string `yaml:"bucket"`
		Region        string `yaml:"region"`
		Prefix        string `yaml:"prefix"`
	} `yaml:"storage"`

	Auth struct {
		JWTSecret  string `yaml:"jwt_secret"`
		AccessTTL  string `yaml:"access_ttl"`
		RefreshTTL string `yaml:"refresh_ttl"`

		// Credenciales de respaldo para demo/local: habilitan el flujo
		// completo de login sin backend. Nunca en prod.
		Fallback struct {
			Enabled  bool   `yaml:"enabled"`
			Email    string `yaml:"email"`
			Password string `yaml:"password"`
			TOTP     string `yaml:"totp_secret"`
		} `yaml:"fallback"`
	} `yaml:"auth"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`

	Session struct {
		Path string `yaml:"path"`
	} `yaml:"session"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load lee el YAML en path (opcional: path vacío usa solo defaults y
// env) y aplica overrides de entorno.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}

	// sane defaults
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.CacheTTL == "" {
		c.Server.CacheTTL = "2m"
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	if c.Auth.AccessTTL == "" {
		c.Auth.AccessTTL = "15m"
	}
	if c.Auth.RefreshTTL == "" {
		c.Auth.RefreshTTL = "720h" // 30d
	}
	if c.Storage.Kind == "" {
		c.Storage.Kind = "memory"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.applyEnvOverrides()

	// validate string durations
	for _, d := range []string{c.Server.CacheTTL, c.Auth.AccessTTL, c.Auth.RefreshTTL} {
		if d != "" {
			if _, err := time.ParseDuration(d); err != nil {
				return nil, err
			}
		}
	}
	if c.Database.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Configured indica si hay backend de datos.
func (c *Config) Configured() bool { return strings.TrimSpace(c.Database.DSN) != "" }

// Duration parsea una duración ya validada por Load.
func Duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

// Validate chequea combinaciones inválidas que conviene cortar en el
// arranque y no en la primera request.
func (c *Config) Validate() error {
	if c.Configured() && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth.jwt_secret es obligatorio con base configurada")
	}
	if c.Storage.Kind == "filesystem" && c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir es obligatorio con kind=filesystem")
	}
	if c.Storage.Kind == "s3" && c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket es obligatorio con kind=s3")
	}
	if strings.EqualFold(c.App.Env, "prod") && c.Auth.Fallback.Enabled {
		return fmt.Errorf("auth.fallback no puede estar habilitado en prod")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("BACKOFFICE_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvStr("DATABASE_URL"); ok {
		c.Database.DSN = v
	}
	if v, ok := getEnvStr("BACKOFFICE_JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Driver = "redis"
		c.Cache.Addr = v
	}
	if v, ok := getEnvStr("BACKOFFICE_STORAGE_KIND"); ok {
		c.Storage.Kind = v
	}
	if v, ok := getEnvStr("BACKOFFICE_STORAGE_DIR"); ok {
		c.Storage.Dir = v
	}
	if v, ok := getEnvStr("BACKOFFICE_STORAGE_BUCKET"); ok {
		c.Storage.Bucket = v
	}
	if v, ok := getEnvStr("BACKOFFICE_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := getEnvStr("BACKOFFICE_SESSION_PATH"); ok {
		c.Session.Path = v
	}
	if v, ok := getEnvBool("BACKOFFICE_FALLBACK_ENABLED"); ok {
		c.Auth.Fallback.Enabled = v
	}
	if v, ok := getEnvStr("SMTP_HOST"); ok {
		c.SMTP.Host = v
	}
	if v, ok := getEnvInt("SMTP_PORT"); ok {
		c.SMTP.Port = v
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
