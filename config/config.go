package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/spaceshare/spaceshare/core/assignlog"
	"github.com/spaceshare/spaceshare/core/metrics"
	"github.com/spaceshare/spaceshare/core/monitoring"
	"github.com/spaceshare/spaceshare/infra/table"
)

type Config struct {
	Grouping GroupingConfig   `json:"grouping"`
	Input    table.Source     `json:"input"`
	Output   OutputConfig     `json:"output"`
	Notify   NotifyConfig     `json:"notify"`
	History  assignlog.Config `json:"history"`
	Metrics  metrics.Config   `json:"metrics"`
	// Monitoring configures error reporting.
	Monitoring monitoring.Config `json:"monitoring"`
}

// Default returns the configuration used for keys absent from every source.
func Default() Config {
	return Config{
		Grouping: DefaultGrouping(),
		Output:   OutputConfig{Path: DefaultOutputPath},
	}
}

// SetDefaults fills empty fields.
func (c *Config) SetDefaults() {
	c.Grouping.SetDefaults()
	c.Output.SetDefaults()
	c.Notify.SetDefaults()
	c.History.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Grouping.Validate(); err != nil {
		return fmt.Errorf("grouping: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.History.Validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from .env style files into the process
// environment. Missing files are skipped; existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the file at path, applies K_ environment overrides and
// validates the result. An empty path uses defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// K_GROUPING__MAX_PEOPLE_PER_CAR -> grouping.max_people_per_car
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
