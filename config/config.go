// Package config loads kaibun settings from YAML, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"kaibun/tokenize"
)

// Config holds the settings of one extraction run.
type Config struct {
	MinLength  int                 `yaml:"min_length"`
	Dictionary tokenize.Dictionary `yaml:"dictionary"`
	Mode       tokenize.Mode       `yaml:"mode"`
	Workers    int                 `yaml:"workers"`
	LogDir     string              `yaml:"log_dir"`
	LogLevel   string              `yaml:"log_level"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		MinLength:  7,
		Dictionary: tokenize.IPA,
		Mode:       tokenize.Normal,
		Workers:    4,
		LogDir:     "logs",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path (optional), then applies KAIBUN_*
// environment variables, including those from a .env file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}
	}

	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file. ENV_PATH overrides
// defaultPath. A missing file is not an error.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}
	err := godotenv.Load(envPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("KAIBUN_MIN_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KAIBUN_MIN_LENGTH: %w", err)
		}
		c.MinLength = n
	}
	if v := os.Getenv("KAIBUN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KAIBUN_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("KAIBUN_DICTIONARY"); v != "" {
		c.Dictionary = tokenize.Dictionary(v)
	}
	if v := os.Getenv("KAIBUN_MODE"); v != "" {
		c.Mode = tokenize.Mode(v)
	}
	if v := os.Getenv("KAIBUN_LOG_DIR"); v != "" {
		c.LogDir = v
	}
	if v := os.Getenv("KAIBUN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

var (
	validDictionaries = map[tokenize.Dictionary]bool{tokenize.IPA: true, tokenize.UniDic: true}
	validModes        = map[tokenize.Mode]bool{tokenize.Normal: true, tokenize.Search: true, tokenize.Extended: true}
	validLevels       = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks every field.
func (c *Config) Validate() error {
	if c.MinLength <= 0 {
		return fmt.Errorf("min_length must be positive, got %d", c.MinLength)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if !validDictionaries[c.Dictionary] {
		return fmt.Errorf("invalid dictionary %q", c.Dictionary)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
