package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jobboard-engine/internal/domain"
)

type SourceConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Locator string `yaml:"locator" json:"locator"` // file path or http(s) URL
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Fetch struct {
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RatePerSecond  float64 `yaml:"rate_per_second" json:"rate_per_second"`
		Burst          int     `yaml:"burst" json:"burst"`
	} `yaml:"fetch" json:"fetch"`

	Sources struct {
		Meritmind          SourceConfig `yaml:"meritmind" json:"meritmind"`
		Poolia             SourceConfig `yaml:"poolia" json:"poolia"`
		Arbetsformedlingen SourceConfig `yaml:"arbetsformedlingen" json:"arbetsformedlingen"`
	} `yaml:"sources" json:"sources"`

	Paging struct {
		PageSize int `yaml:"page_size" json:"page_size"`
	} `yaml:"paging" json:"paging"`
}

// Load reads the YAML config, overlaying any .env file first so local
// overrides work without editing YAML.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if port := os.Getenv("JOBBOARD_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.App.Port = p
		}
	}
	if dir := os.Getenv("JOBBOARD_DATA_DIR"); dir != "" {
		cfg.App.DataDir = dir
	}

	return cfg, nil
}

// SourceFor returns the per-source block for a known tag.
func (c Config) SourceFor(s domain.Source) SourceConfig {
	switch s {
	case domain.SourceMeritmind:
		return c.Sources.Meritmind
	case domain.SourcePoolia:
		return c.Sources.Poolia
	case domain.SourceArbetsformedlingen:
		return c.Sources.Arbetsformedlingen
	}
	return SourceConfig{}
}
