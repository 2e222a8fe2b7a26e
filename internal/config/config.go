package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Port           string `yaml:"port"`
	APIPrefix      string `yaml:"api_prefix"`
	StoreDriver    string `yaml:"store_driver"`
	StoreDSN       string `yaml:"store_dsn"`
	SessionSecret  string `yaml:"session_secret"`
	SecureCookies  bool   `yaml:"secure_cookies"`
	APIKey         string `yaml:"api_key"`
	AllowedOrigin  string `yaml:"allowed_origin"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`

	SeedAdminName     string `yaml:"seed_admin_name"`
	SeedAdminEmail    string `yaml:"seed_admin_email"`
	SeedAdminPassword string `yaml:"seed_admin_password"`
}

func Default() *Config {
	return &Config{
		Port:           "8080",
		APIPrefix:      "/make-server-291b20a9",
		StoreDriver:    "sqlite",
		StoreDSN:       "directory.db",
		AllowedOrigin:  "*",
		MaxUploadBytes: 10 * 1024 * 1024, // 10MB
	}
}

// Load reads filename over the defaults, then applies a .env file and
// environment overrides. A missing config file is not an error.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.APIPrefix, "API_PREFIX")
	setString(&c.StoreDriver, "STORE_DRIVER")
	setString(&c.StoreDSN, "STORE_DSN")
	setString(&c.SessionSecret, "SESSION_SECRET")
	setString(&c.APIKey, "API_KEY")
	setString(&c.AllowedOrigin, "ALLOWED_ORIGIN")
	setString(&c.SeedAdminName, "SEED_ADMIN_NAME")
	setString(&c.SeedAdminEmail, "SEED_ADMIN_EMAIL")
	setString(&c.SeedAdminPassword, "SEED_ADMIN_PASSWORD")

	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.SecureCookies = b
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.MaxUploadBytes = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
