// Package index maintains a full-text search index over the journal.
//
// The index is a throwaway sqlite database: the journal file stays the
// single source of truth and the index is rebuilt from it on demand.
package index

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dailynotes/daily/internal/entry"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Match is a search result.
type Match struct {
	ID    string
	Title string
}

type Index struct {
	client *sql.DB
}

// Open connects to the index database, creating the schema when needed.
func Open(path string) (*Index, error) {
	client, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open index %s: %w", path, err)
	}

	instance, err := sqlite3.WithInstance(client, &sqlite3.Config{})
	if err != nil {
		return nil, err
	}
	d, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("error while reading migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", instance)
	if err != nil {
		return nil, fmt.Errorf("error while initializing migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("error while running migrations: %w", err)
	}

	return &Index{client: client}, nil
}

func (i *Index) Close() error {
	return i.client.Close()
}

// Rebuild replaces the index content from the journal entries.
func (i *Index) Rebuild(entries []*entry.Entry) error {
	tx, err := i.client.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entry_fts;`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO entry_fts (id, title, body, tags) VALUES (?, ?, ?, ?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.ID(), e.Title, entryBody(e), strings.Join(e.Tags(), " ")); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Search returns the entries matching a FTS query, best match first.
func (i *Index) Search(query string) ([]Match, error) {
	rows, err := i.client.Query(`
		SELECT id, title
		FROM entry_fts
		WHERE entry_fts MATCH ?
		ORDER BY rank;`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.Title); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// entryBody flattens every heading content into a single searchable text.
func entryBody(e *entry.Entry) string {
	var parts []string
	for _, name := range e.Headings.Names() {
		content, _ := e.Headings.Get(name)
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n\n")
}
