// Package config loads the gnssrx daemon configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source SourceConfig `yaml:"source"`
	PPS    PPSConfig    `yaml:"pps"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

type SourceConfig struct {
	// Kind selects the transport: "serial" (default) or "file".
	Kind string `yaml:"kind"`

	// Device is the serial device path; empty means auto-detect.
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	// Path is the NMEA log file read when Kind=="file".
	Path string `yaml:"path"`
}

type PPSConfig struct {
	Enable bool `yaml:"enable"`
	Pin    int  `yaml:"pin"`
}

type OutputConfig struct {
	// Format is "ndjson" (default) or "text".
	Format string `yaml:"format"`

	// IncludeUnsupported also emits sentences with no decoder, carrying
	// just their message id.
	IncludeUnsupported bool `yaml:"include_unsupported"`
}

type LogConfig struct {
	// Level is a logrus level name; empty means "info".
	Level string `yaml:"level"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Source.Kind == "" {
		cfg.Source.Kind = "serial"
	}
	switch cfg.Source.Kind {
	case "serial":
		if cfg.Source.Baud == 0 {
			cfg.Source.Baud = 9600
		}
	case "file":
		if cfg.Source.Path == "" {
			return Config{}, fmt.Errorf("source.path is required when source.kind is file")
		}
	default:
		return Config{}, fmt.Errorf("source.kind must be serial or file, got %q", cfg.Source.Kind)
	}

	if cfg.PPS.Enable && cfg.PPS.Pin <= 0 {
		return Config{}, fmt.Errorf("pps.pin is required when pps.enable is true")
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "ndjson"
	}
	if cfg.Output.Format != "ndjson" && cfg.Output.Format != "text" {
		return Config{}, fmt.Errorf("output.format must be ndjson or text, got %q", cfg.Output.Format)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}
