// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-notes/pkg/types"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultConfig(), cfg)
	assert.Equal(t, types.NameIdentifier, cfg.FileNaming)
	assert.False(t, cfg.EnrichmentEnabled(), "enrichment must be off by default")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper-notes.yaml")
	content := `folder_location: papers
file_naming: first-3-title-terms
llm_key: sk-test
llm_model: gpt-4o
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "papers", cfg.FolderLocation)
	assert.Equal(t, types.NameFirst3Terms, cfg.FileNaming)
	assert.Equal(t, "sk-test", cfg.LLMKey)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	// Untouched keys keep their defaults.
	assert.Equal(t, types.DefaultConfig().LLMEndpoint, cfg.LLMEndpoint)
	assert.True(t, cfg.EnrichmentEnabled())
}

func TestLoadRejectsInvalidNamingPolicy(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyFileNaming, "alphabetical")

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alphabetical")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := types.Config{
		FolderLocation: "papers/inbox",
		FileNaming:     types.NameAllTermsNoStopwords,
		LLMKey:         "N/A",
		LLMModel:       "gpt-4o-mini",
		LLMEndpoint:    "https://api.openai.com/v1/chat/completions",
	}

	path := filepath.Join(t.TempDir(), "nested", "paper-notes.yaml")
	require.NoError(t, Save(path, cfg))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	got, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"folder location", KeyFolderLocation, "papers", false},
		{"valid naming policy", KeyFileNaming, "first-5-title-terms-no-stopwords", false},
		{"invalid naming policy", KeyFileNaming, "by-venue", true},
		{"llm key", KeyLLMKey, "sk-abc", false},
		{"llm model", KeyLLMModel, "gpt-4o", false},
		{"llm endpoint", KeyLLMEndpoint, "https://example.com/v1/chat/completions", false},
		{"unknown key", "theme", "dark", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultConfig()
			err := Set(&cfg, tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, types.DefaultConfig(), cfg, "failed Set must not modify the config")
				return
			}
			require.NoError(t, err)
			got, err := Get(cfg, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get(types.DefaultConfig(), "theme")
	require.Error(t, err)
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 5)
	assert.IsIncreasing(t, keys)
}
