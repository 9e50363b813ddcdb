// Package store persists generated puzzles and their audit reports in
// a SQLite database under the data directory. The store follows an
// attach/detach lifecycle: callers attach to a data directory, operate,
// and detach when done.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pathword/pkg/audit"
	"github.com/mesh-intelligence/pathword/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "pathword.db"

// Summary is one row of a puzzle listing.
type Summary struct {
	PuzzleID  string    `json:"puzzleId"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is a SQLite-backed puzzle repository.
type Store struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// New creates a detached store; call Attach before use.
func New() *Store {
	return &Store{}
}

// Attach opens (creating if needed) the database under dataDir and
// applies the schema. Returns types.ErrAlreadyAttached when called on
// an attached store.
func (s *Store) Attach(dataDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached store
// succeeds.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.attached = false
	return err
}

// SavePuzzle inserts or replaces a puzzle document.
func (s *Store) SavePuzzle(p *types.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode puzzle: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO puzzles (puzzle_id, theme, created_at, document) VALUES (?, ?, ?, ?)`,
		p.PuzzleID, p.Theme, time.Now().UTC().Format(time.RFC3339), string(doc),
	)
	return err
}

// GetPuzzle loads a puzzle by ID. Returns types.ErrPuzzleNotFound when
// no such row exists.
func (s *Store) GetPuzzle(puzzleID string) (*types.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	var doc string
	err := s.db.QueryRow(`SELECT document FROM puzzles WHERE puzzle_id = ?`, puzzleID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, types.ErrPuzzleNotFound
	}
	if err != nil {
		return nil, err
	}
	var p types.Puzzle
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("decode puzzle %q: %w", puzzleID, err)
	}
	return &p, nil
}

// ListPuzzles returns summaries of every stored puzzle, newest first.
func (s *Store) ListPuzzles() ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	rows, err := s.db.Query(`SELECT puzzle_id, theme, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var created string
		if err := rows.Scan(&sum.PuzzleID, &sum.Theme, &created); err != nil {
			return nil, err
		}
		sum.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// SaveReport inserts or replaces the audit report for a puzzle.
func (s *Store) SaveReport(puzzleID string, rep audit.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	doc, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	valid := 0
	if rep.Valid {
		valid = 1
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO reports (puzzle_id, valid, created_at, document) VALUES (?, ?, ?, ?)`,
		puzzleID, valid, time.Now().UTC().Format(time.RFC3339), string(doc),
	)
	return err
}

// GetReport loads the stored audit report for a puzzle. Returns
// types.ErrReportNotFound when the puzzle has no stored report.
func (s *Store) GetReport(puzzleID string) (audit.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return audit.Report{}, types.ErrStoreDetached
	}
	var doc string
	err := s.db.QueryRow(`SELECT document FROM reports WHERE puzzle_id = ?`, puzzleID).Scan(&doc)
	if err == sql.ErrNoRows {
		return audit.Report{}, types.ErrReportNotFound
	}
	if err != nil {
		return audit.Report{}, err
	}
	var rep audit.Report
	if err := json.Unmarshal([]byte(doc), &rep); err != nil {
		return audit.Report{}, fmt.Errorf("decode report %q: %w", puzzleID, err)
	}
	return rep, nil
}
