package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server" toml:"server"`
	Log        LogConfig        `yaml:"log" toml:"log"`
	HTTPClient HTTPClientConfig `yaml:"http_client" toml:"http_client"`
	Limiter    LimiterConfig    `yaml:"limiter" toml:"limiter"`
	Provider   ProviderConfig   `yaml:"provider" toml:"provider"`
}

type ServerConfig struct {
	Addr                string   `yaml:"addr" toml:"addr"`
	ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds" toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `yaml:"write_timeout_seconds" toml:"write_timeout_seconds"`
	AllowOrigins        []string `yaml:"allow_origins" toml:"allow_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	// File enables a rotated log file next to stderr output.
	File string `yaml:"file" toml:"file"`
}

// HTTPClientConfig tunes the client used for provider calls. Zero timeout
// keeps the provider SDK default.
type HTTPClientConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// LimiterConfig caps outbound provider calls. Zero values disable it.
type LimiterConfig struct {
	MaxConcurrent int     `yaml:"max_concurrent" toml:"max_concurrent"`
	RatePerSecond float64 `yaml:"rate_per_second" toml:"rate_per_second"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key" toml:"api_key"`
	BaseURL string `yaml:"base_url" toml:"base_url"`
	Model   string `yaml:"model" toml:"model"`
}

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	return LoadFile(configPath)
}

// LoadFile reads path on top of the defaults. A missing file only yields
// defaults plus environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnvOverrides(cfg), nil
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return applyEnvOverrides(cfg), nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 120,
			AllowOrigins:        []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Provider: ProviderConfig{
			BaseURL: "https://api.groq.com/openai/v1/",
			Model:   "llama-3.1-8b-instant",
		},
	}
}

func applyEnvOverrides(cfg *Config) *Config {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("GROQ_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		cfg.Provider.Model = v
	}
	return cfg
}
