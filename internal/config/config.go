// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and persists the paper-notes settings file. Viper
// handles the read side (file, environment, flags); saves go through
// plain YAML so the file on disk stays minimal and diffable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-notes/pkg/types"
)

// Settings keys as they appear in the config file and `config` command.
const (
	KeyFolderLocation = "folder_location"
	KeyFileNaming     = "file_naming"
	KeyLLMKey         = "llm_key"
	KeyLLMModel       = "llm_model"
	KeyLLMEndpoint    = "llm_endpoint"
)

// Keys returns every settings key, sorted.
func Keys() []string {
	keys := []string{
		KeyFolderLocation,
		KeyFileNaming,
		KeyLLMKey,
		KeyLLMModel,
		KeyLLMEndpoint,
	}
	sort.Strings(keys)
	return keys
}

// SetDefaults registers the default settings on v.
func SetDefaults(v *viper.Viper) {
	def := types.DefaultConfig()
	v.SetDefault(KeyFolderLocation, def.FolderLocation)
	v.SetDefault(KeyFileNaming, string(def.FileNaming))
	v.SetDefault(KeyLLMKey, def.LLMKey)
	v.SetDefault(KeyLLMModel, def.LLMModel)
	v.SetDefault(KeyLLMEndpoint, def.LLMEndpoint)
}

// Load unmarshals the settings from v and validates them.
func Load(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FileNaming.Valid() {
		return types.Config{}, fmt.Errorf("invalid %s %q: valid policies are %v",
			KeyFileNaming, cfg.FileNaming, types.NamingPolicies)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as
// needed.
func Save(path string, cfg types.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Get returns the value of one settings key.
func Get(cfg types.Config, key string) (string, error) {
	switch key {
	case KeyFolderLocation:
		return cfg.FolderLocation, nil
	case KeyFileNaming:
		return string(cfg.FileNaming), nil
	case KeyLLMKey:
		return cfg.LLMKey, nil
	case KeyLLMModel:
		return cfg.LLMModel, nil
	case KeyLLMEndpoint:
		return cfg.LLMEndpoint, nil
	default:
		return "", fmt.Errorf("unknown config key %q: valid keys are %v", key, Keys())
	}
}

// Set updates one settings key on cfg, validating the value where the
// key is constrained.
func Set(cfg *types.Config, key, value string) error {
	switch key {
	case KeyFolderLocation:
		cfg.FolderLocation = value
	case KeyFileNaming:
		policy := types.NamingPolicy(value)
		if !policy.Valid() {
			return fmt.Errorf("invalid %s %q: valid policies are %v",
				KeyFileNaming, value, types.NamingPolicies)
		}
		cfg.FileNaming = policy
	case KeyLLMKey:
		cfg.LLMKey = value
	case KeyLLMModel:
		cfg.LLMModel = value
	case KeyLLMEndpoint:
		cfg.LLMEndpoint = value
	default:
		return fmt.Errorf("unknown config key %q: valid keys are %v", key, Keys())
	}
	return nil
}
