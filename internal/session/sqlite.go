package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmarquez/tiendita/internal/dbx"
	"github.com/dmarquez/tiendita/internal/session/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the session in a single-row sessions table inside an
// embedded SQLite database. The connection is opened lazily on first use and
// reused for the process lifetime; there is no explicit teardown.
type SQLiteStore struct {
	dsn string
	db  *sql.DB
}

// NewSQLiteStore builds a store for the database at dsn. Nothing is opened
// until the first operation.
func NewSQLiteStore(dsn string) *SQLiteStore {
	return &SQLiteStore{dsn: dsn}
}

func (s *SQLiteStore) openDB() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}
	// one connection is plenty for a single-row store, and it keeps
	// in-memory databases coherent across calls
	db.SetMaxOpenConns(1)
	s.db = db
	return s.db, nil
}

// Init runs the embedded goose migrations, creating the sessions table if it
// does not exist yet. Safe to call on every startup.
func (s *SQLiteStore) Init(ctx context.Context) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate session db: %w", err)
	}
	return nil
}

// Save replaces whatever session is stored with sess. Delete and insert run
// in one transaction so the table never holds more than one row, regardless
// of caller discipline.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (localId, email, token) VALUES (?, ?, ?)`,
			sess.LocalID, sess.Email, sess.Token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored session, or (nil, nil) when the table is empty.
func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	db, err := s.openDB()
	if err != nil {
		return nil, err
	}

	var sess Session
	row := db.QueryRowContext(ctx, `SELECT localId, email, token FROM sessions LIMIT 1`)
	if err := row.Scan(&sess.LocalID, &sess.Email, &sess.Token); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &sess, nil
}

// Clear deletes all rows from the sessions table.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	return nil
}
