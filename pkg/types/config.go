package types

import "time"

// LLMKeyDisabled is the sentinel value meaning no completion endpoint is
// configured; enrichment is skipped entirely while it is set.
const LLMKeyDisabled = "N/A"

// Config is the persisted, process-wide configuration. It is loaded once
// at startup, read-only during a workflow, and written back through the
// settings surface on every change.
type Config struct {
	// FolderLocation is the vault-relative folder notes are created in.
	// Empty means the vault root.
	FolderLocation string `json:"folder_location" yaml:"folder_location" mapstructure:"folder_location"`

	// FileNaming selects the note naming policy. Unknown values are
	// treated as NameIdentifier.
	FileNaming NamingPolicy `json:"file_naming" yaml:"file_naming" mapstructure:"file_naming"`

	// LLMKey is the completion-endpoint credential. The literal "N/A"
	// disables enrichment.
	LLMKey string `json:"llm_key,omitempty" yaml:"llm_key" mapstructure:"llm_key"`

	// LLMModel is the chat-completion model identifier.
	LLMModel string `json:"llm_model" yaml:"llm_model" mapstructure:"llm_model"`

	// LLMEndpoint is the chat-completion endpoint URL.
	LLMEndpoint string `json:"llm_endpoint" yaml:"llm_endpoint" mapstructure:"llm_endpoint"`
}

// DefaultConfig returns the configuration used before any settings file
// exists.
func DefaultConfig() Config {
	return Config{
		FolderLocation: "",
		FileNaming:     NameIdentifier,
		LLMKey:         LLMKeyDisabled,
		LLMModel:       "gpt-4o-mini",
		LLMEndpoint:    "https://api.openai.com/v1/chat/completions",
	}
}

// EnrichmentEnabled reports whether the completion endpoint may be called.
// A key that equals the disabled sentinel, or was never configured at all,
// cannot authenticate.
func (c Config) EnrichmentEnabled() bool {
	return c.LLMKey != "" && c.LLMKey != LLMKeyDisabled
}

// HTTPConfig holds shared HTTP settings for stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-notes/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}
