// Package config loads service configuration from an optional yaml file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default NOAA GHCN-Daily locations.
const (
	DefaultStationsURL  = "https://www1.ncdc.noaa.gov/pub/data/ghcn/daily/ghcnd-stations.csv"
	DefaultInventoryURL = "https://noaa-ghcn-pds.s3.amazonaws.com/ghcnd-inventory.txt"
	DefaultArchiveURL   = "https://www1.ncdc.noaa.gov/pub/data/ghcn/daily/all"
)

// Config contains service settings.
type Config struct {
	Port         string        `yaml:"port"`
	Origins      []string      `yaml:"origins"`
	StationsURL  string        `yaml:"stations_url"`
	InventoryURL string        `yaml:"inventory_url"`
	ArchiveURL   string        `yaml:"archive_url"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	LogLevel     string        `yaml:"log_level"`
}

func defaults() *Config {
	return &Config{
		Port:         "8080",
		Origins:      []string{"*"},
		StationsURL:  DefaultStationsURL,
		InventoryURL: DefaultInventoryURL,
		ArchiveURL:   DefaultArchiveURL,
		FetchTimeout: 30 * time.Second,
		LogLevel:     "info",
	}
}

// Load reads the file named by CONFIG_FILE, if set, and applies environment overrides.
func Load() (*Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		err := cfg.loadFile(path)
		if err != nil {
			return nil, err
		}
	}

	err := cfg.loadEnv()
	if err != nil {
		return nil, err
	}

	cfg.ArchiveURL = strings.TrimRight(cfg.ArchiveURL, "/")

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) loadEnv() error {
	if port := getEnv("PORT"); port != "" {
		c.Port = port
	}

	if origins := getEnv("ORIGINS"); origins != "" {
		c.Origins = splitList(origins)
	}

	if v := getEnv("STATIONS_URL"); v != "" {
		c.StationsURL = v
	}
	if v := getEnv("INVENTORY_URL"); v != "" {
		c.InventoryURL = v
	}
	if v := getEnv("ARCHIVE_URL"); v != "" {
		c.ArchiveURL = v
	}

	if v := getEnv("FETCH_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", v, err)
		}
		c.FetchTimeout = timeout
	}

	if v := getEnv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")

	list := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			list = append(list, p)
		}
	}

	return list
}
