// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists scan manifests into a queryable SQLite database so
// snippets can be looked up by book, tag, or language after a scan.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/snippet-engine/pkg/types"
)

// Store manages the snippet index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the snippet index at cfg.DBPath and ensures the
// schema exists.
func Open(cfg types.IndexConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS files (
			path TEXT PRIMARY KEY,
			root TEXT,
			name TEXT,
			language TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL REFERENCES files(path),
			book TEXT NOT NULL,
			tag TEXT NOT NULL,
			marker TEXT NOT NULL,
			line INTEGER,
			text TEXT,
			match_text TEXT,
			match_start INTEGER,
			match_end INTEGER,
			fq_tag TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_tag ON matches(tag)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_book ON matches(book)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestManifests loads every .json manifest in dir into the index.
// Re-ingesting a manifest replaces that source file's rows rather than
// duplicating them. Returns the number of matches ingested.
func (s *Store) IngestManifests(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading manifest directory %s: %w", dir, err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		n, err := s.ingestManifest(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (s *Store) ingestManifest(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var groups types.TagGroups
	if err := json.Unmarshal(data, &groups); err != nil {
		return 0, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace each source file's previous rows before inserting.
	files := make(map[string]types.MarkerMatch)
	for _, group := range groups {
		for _, m := range group {
			files[m.Path] = m
		}
	}
	for p, m := range files {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO files (path, root, name, language) VALUES (?, ?, ?, ?)`,
			p, m.Root, m.Name, m.Language,
		); err != nil {
			return 0, fmt.Errorf("inserting file %s: %w", p, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE path = ?`, p); err != nil {
			return 0, fmt.Errorf("clearing matches for %s: %w", p, err)
		}
	}

	n := 0
	for _, group := range groups {
		for _, m := range group {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO matches
					(path, book, tag, marker, line, text, match_text, match_start, match_end, fq_tag)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				m.Path, m.Book, m.Tag, string(m.Marker), m.Line, m.Text,
				m.MatchText, m.MatchStart, m.MatchEnd, m.FqTag,
			); err != nil {
				return 0, fmt.Errorf("inserting match for tag %s: %w", m.Tag, err)
			}
			n++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing manifest %s: %w", path, err)
	}
	return n, nil
}

// QueryOptions filters index queries. Empty fields match everything.
type QueryOptions struct {
	Book     string
	Tag      string
	Language string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Query returns matching rows ordered by path, then line.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.MarkerMatch, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT m.path, f.root, f.name, f.language, m.book, m.tag, m.marker,
			m.line, m.text, m.match_text, m.match_start, m.match_end, m.fq_tag
		FROM matches m
		JOIN files f ON m.path = f.path
		WHERE 1=1`)

	if opts.Book != "" {
		qb.WriteString(` AND m.book = ?`)
		args = append(args, opts.Book)
	}
	if opts.Tag != "" {
		qb.WriteString(` AND m.tag = ?`)
		args = append(args, opts.Tag)
	}
	if opts.Language != "" {
		qb.WriteString(` AND f.language = ?`)
		args = append(args, opts.Language)
	}

	qb.WriteString(` ORDER BY m.path, m.line LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []types.MarkerMatch
	for rows.Next() {
		var m types.MarkerMatch
		var marker string
		if err := rows.Scan(
			&m.Path, &m.Root, &m.Name, &m.Language, &m.Book, &m.Tag, &marker,
			&m.Line, &m.Text, &m.MatchText, &m.MatchStart, &m.MatchEnd, &m.FqTag,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		m.Marker = types.Marker(marker)
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}
