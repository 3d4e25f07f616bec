// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-notes/internal/vault"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the hashtags found in the vault",
	Long: `Tags reindexes the vault and prints the distinct hashtags found in
its Markdown notes. These are the tags offered to the completion
endpoint when it suggests tags for a new note.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultDir, _ := cmd.Flags().GetString("vault")

		v, err := vault.Open(vaultDir, "")
		if err != nil {
			return err
		}
		defer v.Close()

		tags, err := v.Tags(cmd.Context())
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			fmt.Println("No tags found.")
			return nil
		}
		for _, tag := range tags {
			fmt.Println(tag)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().String("vault", ".", "vault root directory")

	rootCmd.AddCommand(tagsCmd)
}
