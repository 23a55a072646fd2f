/*
File    : sigmaf/driver/config.go
Package : driver
*/

// Package driver wires the lexer/parser/evaluator pipeline to the
// outside world: an interactive REPL and a one-shot file executor.
package driver

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var embeddedConfig []byte

// Config holds the display strings the REPL and CLI print: banner,
// version, author, license, separator line, and prompt. Loaded once
// from config.yaml, which is embedded into the binary at build time:
// the strings live outside Go source, but changing them still needs a
// rebuild.
type Config struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	License string `yaml:"license"`
	Line    string `yaml:"line"`
	Prompt  string `yaml:"prompt"`
}

// LoadConfig parses the embedded configuration document.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(embeddedConfig, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
