/*
File    : glox/config/config.go
Package : config
*/

// Package config loads the optional `.glox.yaml` file that customizes the
// REPL and CLI driver's presentation. Its absence is not an error: Default
// returns the same banner/prompt conventions the teacher's driver hardcoded
// in main/main.go and repl/repl.go.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the non-semantic presentation settings read from
// `.glox.yaml`. Nothing here affects language behavior.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Banner       string `yaml:"banner"`
	ColorEnabled bool   `yaml:"color_enabled"`
	Version      string `yaml:"version"`
	Author       string `yaml:"author"`
}

// Default mirrors the teacher's driver constants (main/main.go's PROMPT,
// BANNER, VERSION, AUTHOR).
func Default() Config {
	return Config{
		Prompt:       "glox> ",
		Banner:       "glox — a tree-walking Lox-family interpreter",
		ColorEnabled: true,
		Version:      "0.1.0",
		Author:       "glox contributors",
	}
}

// Load reads path (typically ".glox.yaml") and overlays it onto Default.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
