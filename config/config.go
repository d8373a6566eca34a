package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"phoneprice/logger"
)

type Config struct {
	Http  HTTPConfig    `yaml:"http"`
	Log   logger.Config `yaml:"log"`
	Model ModelConfig   `yaml:"model"`
}

type HTTPConfig struct {
	Port           int           `yaml:"port"`
	Timeout        time.Duration `yaml:"timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
}

type ModelConfig struct {
	ModelPath  string `yaml:"model_path"`
	ScalerPath string `yaml:"scaler_path"`
	// CacheSize bounds the prediction memo; 0 disables it.
	CacheSize int `yaml:"cache_size"`
}

func Default() *Config {
	return &Config{
		Http: HTTPConfig{
			Port:           8080,
			Timeout:        10 * time.Second,
			AllowedOrigins: []string{"*"},
			MaxBodyBytes:   64 << 10,
		},
		Log: logger.DefaultConfig(),
		Model: ModelConfig{
			ModelPath:  "models/model.json",
			ScalerPath: "models/scaler.json",
			CacheSize:  256,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides (a .env file in the working directory is honoured).
// A missing file is not an error.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case err == nil:
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Http.Port <= 0 || c.Http.Port > 65535 {
		return fmt.Errorf("http.port %d out of range", c.Http.Port)
	}
	if c.Http.Timeout <= 0 {
		return errors.New("http.timeout must be positive")
	}
	if c.Model.ModelPath == "" || c.Model.ScalerPath == "" {
		return errors.New("model.model_path and model.scaler_path are required")
	}
	if c.Model.CacheSize < 0 {
		return errors.New("model.cache_size must not be negative")
	}
	return nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("PHONEPRICE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PHONEPRICE_PORT: %w", err)
		}
		c.Http.Port = port
	}
	if v := os.Getenv("PHONEPRICE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PHONEPRICE_MODEL_PATH"); v != "" {
		c.Model.ModelPath = v
	}
	if v := os.Getenv("PHONEPRICE_SCALER_PATH"); v != "" {
		c.Model.ScalerPath = v
	}
	return nil
}
