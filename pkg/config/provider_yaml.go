package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for a YAML defaults file. A missing
// file is not an error; it yields the builtin defaults.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a provider reading filename.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// Load reads the defaults file, filling unset fields from the builtins.
func (y *YAMLProvider) Load() (*Defaults, error) {
	data, err := os.ReadFile(y.filename)
	if errors.Is(err, os.ErrNotExist) {
		return Builtin(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", y.filename, err)
	}

	var yamlConfig struct {
		Timezone string `yaml:"timezone"`
		Renderer string `yaml:"renderer"`
		Debug    bool   `yaml:"debug"`
	}
	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", y.filename, err)
	}

	d := Builtin()
	if yamlConfig.Timezone != "" {
		d.Timezone = yamlConfig.Timezone
	}
	switch yamlConfig.Renderer {
	case "":
		// keep builtin
	case "styled", "plain":
		d.Renderer = yamlConfig.Renderer
	default:
		return nil, fmt.Errorf("config %s: unknown renderer %q (use 'styled' or 'plain')", y.filename, yamlConfig.Renderer)
	}
	d.Debug = yamlConfig.Debug

	return d, nil
}
