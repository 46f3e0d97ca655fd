package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/6Ash6/TPIS-CRM-model/internal/store"

	_ "modernc.org/sqlite"
)

// Store is the sqlite-backed implementation of store.Store. One Store wraps
// one database handle for the life of the process.
type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single writer connection sidesteps SQLITE_BUSY on concurrent
	// writes; reads still multiplex fine through database/sql.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Clients() store.Clients { return &clientsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
