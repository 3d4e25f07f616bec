// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault is the note store: a directory tree of Markdown files
// plus a SQLite index of the hashtags found in them. The index lives
// under .paper-notes/ inside the vault and is rebuilt incrementally from
// file modification times.
package vault

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	stateDir = ".paper-notes"
	dbFile   = "index.db"
)

// Vault manages the note directory and its tag index.
type Vault struct {
	root   string
	db     *sql.DB
	editor string
}

// Open opens or creates a vault rooted at root. The index database is
// created at root/.paper-notes/index.db along with its schema. editor is
// the command used to open notes; empty disables opening.
func Open(root, editor string) (*Vault, error) {
	if err := os.MkdirAll(filepath.Join(root, stateDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating vault state directory: %w", err)
	}

	dbPath := filepath.Join(root, stateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening tag index: %w", err)
	}

	v := &Vault{root: root, db: db, editor: editor}
	if err := v.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tag index schema: %w", err)
	}
	return v, nil
}

// Close releases the index database connection.
func (v *Vault) Close() error {
	return v.db.Close()
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

func (v *Vault) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			mod_time TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			tag TEXT NOT NULL,
			note_path TEXT NOT NULL REFERENCES notes(path) ON DELETE CASCADE,
			PRIMARY KEY (tag, note_path)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag)`,
	}
	for _, stmt := range statements {
		if _, err := v.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Exists reports whether a note is present at the vault-relative path.
func (v *Vault) Exists(path string) (bool, error) {
	_, err := os.Stat(filepath.Join(v.root, path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// Create writes a new note at the vault-relative path, creating parent
// directories as needed. It fails if the note already exists.
func (v *Vault) Create(path, body string) error {
	full := filepath.Join(v.root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("creating note directory: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// OpenPath opens a note in the configured editor. With no editor
// configured it is a no-op.
func (v *Vault) OpenPath(path string) error {
	if v.editor == "" {
		return nil
	}
	cmd := exec.Command(v.editor, filepath.Join(v.root, path))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening %s with %s: %w", path, v.editor, err)
	}
	return nil
}

// Tags reindexes the vault and returns the distinct tag labels found in
// its notes, sorted.
func (v *Vault) Tags(ctx context.Context) ([]string, error) {
	if err := v.Reindex(ctx); err != nil {
		return nil, err
	}

	rows, err := v.db.QueryContext(ctx, `SELECT DISTINCT tag FROM tags ORDER BY tag`)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
