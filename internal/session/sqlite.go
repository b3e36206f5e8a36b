package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/gmkornilov/crazymoves-backend/pkg/sequence"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	snapshot TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const queryTimeout = time.Second

// SqliteStore persists slideshow snapshots so sessions survive a restart.
type SqliteStore struct {
	db       *sql.DB
	catalogs puzzle.Catalogs
	mu       sync.Mutex
}

// OpenSqlite opens (creating if needed) the database file at path.
func OpenSqlite(path string, catalogs puzzle.Catalogs) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store, err := NewSqliteStore(db, catalogs)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewSqliteStore(db *sql.DB, catalogs puzzle.Catalogs) (*SqliteStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SqliteStore{db: db, catalogs: catalogs}, nil
}

func (s *SqliteStore) Create(ctx context.Context) (string, sequence.View, error) {
	show := sequence.New(s.catalogs)
	view := show.Start()
	id := newID()

	data, err := json.Marshal(show.Snapshot())
	if err != nil {
		return "", sequence.View{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, "INSERT INTO sessions (id, snapshot) VALUES (?, ?)", id, string(data))
	if err != nil {
		return "", sequence.View{}, fmt.Errorf("failed to create session: %w", err)
	}
	return id, view, nil
}

func (s *SqliteStore) Apply(ctx context.Context, id string, cmd Command) (sequence.View, error) {
	if !validID(id) {
		return sequence.View{}, ErrSessionNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	s.mu.Lock()
	defer s.mu.Unlock()

	var data string
	err := s.db.QueryRowContext(ctx, "SELECT snapshot FROM sessions WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return sequence.View{}, ErrSessionNotFound
	}
	if err != nil {
		return sequence.View{}, fmt.Errorf("failed to load session: %w", err)
	}

	var snap sequence.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return sequence.View{}, fmt.Errorf("failed to decode session: %w", err)
	}
	show, err := sequence.Restore(s.catalogs, snap)
	if err != nil {
		return sequence.View{}, fmt.Errorf("failed to restore session: %w", err)
	}

	view, err := cmd(show)
	if err != nil {
		return view, err
	}

	next, err := json.Marshal(show.Snapshot())
	if err != nil {
		return sequence.View{}, err
	}
	if string(next) == data {
		return view, nil
	}
	_, err = s.db.ExecContext(ctx, "UPDATE sessions SET snapshot = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", string(next), id)
	if err != nil {
		return sequence.View{}, fmt.Errorf("failed to save session: %w", err)
	}
	return view, nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}
