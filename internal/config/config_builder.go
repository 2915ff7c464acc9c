package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON parses the JSON file referenced by the sources merged so far.
// No file configured is not an error; a configured but unreadable file is.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	jsonFilePath := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonFilePath = cfg.JSONFilePath
			break
		}
	}
	if jsonFilePath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Backend: Backend{
			BaseURL: "http://localhost:8080",
			Project: "demo",
			Timeout: 15 * time.Second,
		},
		Cache: Cache{
			Path: ":memory:",
		},
		Devserver: Devserver{
			Address: "0.0.0.0:8080",
			Project: "demo",
			APIKey:  "dev-key",
		},
	})
	return b
}
