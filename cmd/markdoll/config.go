package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// fileConfig is the shape of an optional .markdoll.yaml file: a default
// emit target, a code-block highlight-language table, and a list of
// danger.eval expressions (dangerAllow), grounded in cmd/o/eval.go's use
// of goccy/go-yaml to decode ad hoc scalar configuration. dangerAllow is
// decoded but not consulted: danger.eval runs any expression it is given.
type fileConfig struct {
	Target        string            `yaml:"target"`
	CodeLanguages map[string]string `yaml:"codeLanguages"`
	DangerAllow   []string          `yaml:"dangerAllow"`
}

func loadConfig(path string) (*fileConfig, error) {
	if path == "" {
		return &fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("markdoll: reading config %q: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("markdoll: parsing config %q: %w", path, err)
	}
	return &cfg, nil
}
