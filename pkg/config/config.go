package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values
type Config struct {
	Port    string `yaml:"port" env:"PORT"`
	GinMode string `yaml:"gin_mode" env:"GIN_MODE"`

	// SignupEndpointURL is where signups are posted. Leaving it empty (or
	// not http/https) keeps everything working on the local cache alone.
	SignupEndpointURL string `yaml:"signup_endpoint_url" env:"SIGNUP_ENDPOINT_URL"`
	Source            string `yaml:"source" env:"SIGNUP_SOURCE"`
	CacheKey          string `yaml:"cache_key" env:"SIGNUP_CACHE_KEY"`

	StoreBackend string `yaml:"store_backend" env:"STORE_BACKEND"`
	StorePath    string `yaml:"store_path" env:"STORE_PATH"`
	RedisAddr    string `yaml:"redis_addr" env:"REDIS_ADDR"`

	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	AdminToken     string   `yaml:"admin_token" env:"ADMIN_TOKEN"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:           "8080",
		GinMode:        "debug",
		Source:         "softblush-landing",
		CacheKey:       "softblushSignups",
		StoreBackend:   "file",
		StorePath:      "data/signups.json",
		RedisAddr:      "localhost:6379",
		AllowedOrigins: []string{"*"},
	}
}

// LoadConfig builds the configuration from defaults, the YAML file named
// by CONFIG_FILE if any, and finally environment variables.
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}
