// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-notes/internal/config"
	"github.com/pdiddy/paper-notes/internal/enrich"
	"github.com/pdiddy/paper-notes/internal/note"
	"github.com/pdiddy/paper-notes/internal/secrets"
	"github.com/pdiddy/paper-notes/internal/source"
	"github.com/pdiddy/paper-notes/internal/vault"
	"github.com/pdiddy/paper-notes/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note [url]",
	Short: "Create a note for a paper URL",
	Long: `Note resolves a paper URL into bibliographic metadata and creates a
Markdown note in the vault. Supported URLs are arXiv abstract pages,
ACL Anthology pages, and Semantic Scholar paper pages.

If a note for the paper already exists it is opened instead; nothing is
overwritten. With a completion endpoint configured, the note also gets
machine-suggested tags and a future-work summary, both prefixed with 💻.`,
	Args: cobra.ExactArgs(1),
	RunE: runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	vaultDir, _ := cmd.Flags().GetString("vault")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	editor, _ := cmd.Flags().GetString("editor")
	noOpen, _ := cmd.Flags().GetBool("no-open")
	if noOpen {
		editor = ""
	}

	v, err := vault.Open(vaultDir, editor)
	if err != nil {
		return err
	}
	defer v.Close()

	client := &http.Client{Timeout: timeout}
	fetcher := &source.Fetcher{
		Client: client,
		Config: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "paper-notes/" + version,
		},
	}

	creator := &note.Creator{
		Store:    v,
		Fetcher:  fetcher,
		Enricher: newEnricher(cfg, client),
		Config:   cfg,
		Out:      os.Stdout,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return creator.CreateFromURL(ctx, args[0])
}

// newEnricher builds the enrichment stage. The completion key comes from
// the config, with the llm-api-key secret filling in when the config
// leaves enrichment disabled. No usable key means a nil backend, which
// disables enrichment entirely.
func newEnricher(cfg types.Config, client *http.Client) *enrich.Enricher {
	key := cfg.LLMKey
	if !cfg.EnrichmentEnabled() {
		key = loadedSecrets[secrets.LLMAPIKey]
	}
	if key == "" || key == types.LLMKeyDisabled {
		return &enrich.Enricher{}
	}

	return &enrich.Enricher{Backend: &enrich.OpenAIBackend{
		Endpoint: cfg.LLMEndpoint,
		APIKey:   key,
		Model:    cfg.LLMModel,
		Client:   client,
	}}
}

func init() {
	noteCmd.Flags().String("vault", ".", "vault root directory")
	noteCmd.Flags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	noteCmd.Flags().String("editor", os.Getenv("EDITOR"), "command used to open the note")
	noteCmd.Flags().Bool("no-open", false, "do not open the note after creating it")

	rootCmd.AddCommand(noteCmd)
}
