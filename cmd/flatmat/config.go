package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the flatmat configuration file
// (~/.config/flatmat/config.yaml). All fields are optional; zero values
// mean "not set" and leave the flag defaults in place.
type Config struct {
	// OutputFormat is the default encoding for written matrices:
	// "json", "yaml" or "pretty" (stdout only).
	OutputFormat string `yaml:"output_format"`

	// LogLevel is the default diagnostics level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "flatmat", "config.yaml")
}

// loadConfig reads the config file if present. A missing file is not an
// error; a malformed one is.
func loadConfig() (Config, error) {
	var cfg Config
	path := configPath()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfig applies config file defaults to command variables when the
// corresponding CLI flag was not explicitly set. Precedence: flag > config
// file > built-in default.
func applyConfig(c *cli.Command, cfg Config, format, logLevel *string) {
	if cfg.OutputFormat != "" && !c.IsSet("format") {
		*format = cfg.OutputFormat
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		*logLevel = cfg.LogLevel
	}
}
