// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// tagPattern matches inline hashtags the way note-taking apps read them:
// a # followed by a letter or digit, then word characters, slashes, or
// hyphens.
var tagPattern = regexp.MustCompile(`#[A-Za-z0-9][\w/-]*`)

// Reindex brings the tag index up to date with the vault's Markdown
// files. Unchanged files are detected by modification time and skipped;
// records for deleted files are dropped.
func (v *Vault) Reindex(ctx context.Context) error {
	seen := make(map[string]bool)

	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == stateDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, err := filepath.Rel(v.root, path)
		if err != nil {
			return err
		}
		seen[rel] = true

		info, err := d.Info()
		if err != nil {
			return err
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = v.db.QueryRowContext(ctx,
			`SELECT mod_time FROM notes WHERE path = ?`, rel,
		).Scan(&storedModTime)
		if err == nil && storedModTime == modTime {
			return nil
		}
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("reading index record for %s: %w", rel, err)
		}

		return v.indexNote(ctx, path, rel, modTime)
	})
	if err != nil {
		return fmt.Errorf("reindexing vault: %w", err)
	}

	return v.pruneDeleted(ctx, seen)
}

func (v *Vault) indexNote(ctx context.Context, path, rel, modTime string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rel, err)
	}
	tags := tagPattern.FindAllString(string(data), -1)

	tx, err := v.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notes (path, mod_time) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET mod_time=excluded.mod_time`,
		rel, modTime,
	); err != nil {
		return fmt.Errorf("upserting note record: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tags WHERE note_path = ?`, rel,
	); err != nil {
		return fmt.Errorf("clearing old tags: %w", err)
	}

	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO tags (tag, note_path) VALUES (?, ?)`, tag, rel,
		); err != nil {
			return fmt.Errorf("inserting tag %s: %w", tag, err)
		}
	}

	return tx.Commit()
}

// pruneDeleted drops index records for notes no longer on disk.
func (v *Vault) pruneDeleted(ctx context.Context, seen map[string]bool) error {
	rows, err := v.db.QueryContext(ctx, `SELECT path FROM notes`)
	if err != nil {
		return fmt.Errorf("listing indexed notes: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return fmt.Errorf("scanning note path: %w", err)
		}
		if !seen[path] {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, path := range stale {
		if _, err := v.db.ExecContext(ctx, `DELETE FROM notes WHERE path = ?`, path); err != nil {
			return fmt.Errorf("pruning %s: %w", path, err)
		}
	}
	return nil
}
