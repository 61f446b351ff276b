package fixture

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrClosed is returned by every call on a closed store.
var ErrClosed = errors.New("fixture store is closed")

// Fixture is one stored value.
type Fixture struct {
	ID        int64
	TypeName  string
	Seed      uint64
	Seq       int
	Payload   string
	CreatedAt time.Time
}

// Store keeps fixtures in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens a SQLite database at the given path.
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil

	return err
}

// Save inserts payloads as one batch for typeName in a single transaction.
// Payload i gets sequence number i.
func (s *Store) Save(ctx context.Context, typeName string, seed uint64, payloads []string) error {
	if s.db == nil {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save fixtures: %w", err)
	}
	defer tx.Rollback()

	created := s.now().UTC().Format(time.RFC3339Nano)
	for i, payload := range payloads {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO fixtures (type_name, seed, seq, payload, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, typeName, int64(seed), i, payload, created)
		if err != nil {
			return fmt.Errorf("save fixture %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save fixtures: %w", err)
	}

	return nil
}

// List returns the fixtures stored for typeName, oldest first. A positive
// limit keeps only the most recent ones.
func (s *Store) List(ctx context.Context, typeName string, limit int) ([]Fixture, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	query := `
		SELECT id, type_name, seed, seq, payload, created_at FROM (
			SELECT * FROM fixtures WHERE type_name = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, query, typeName, limit)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	defer rows.Close()

	var out []Fixture
	for rows.Next() {
		var (
			f       Fixture
			seed    int64
			created string
		)
		if err := rows.Scan(&f.ID, &f.TypeName, &seed, &f.Seq, &f.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan fixture: %w", err)
		}

		f.Seed = uint64(seed)
		f.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("fixture %d created_at: %w", f.ID, err)
		}

		out = append(out, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	return out, nil
}

// Count returns the number of fixtures stored for typeName.
func (s *Store) Count(ctx context.Context, typeName string) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fixtures WHERE type_name = ?", typeName).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count fixtures: %w", err)
	}

	return n, nil
}
