package database

import (
	"database/sql"
	"errors"
	"fmt"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteKVStore provides simple kv store interface based on a single sqlite table.
type SQLiteKVStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteKVStore creates new SQLiteKVStore instance, creating the table if needed.
func NewSQLiteKVStore(dbPath string, table string) (*SQLiteKVStore, error) {
	if table == "" {
		return nil, errors.New("table name cannot be empty")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
		key BLOB PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`, table)
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database table: %w", err)
	}

	return &SQLiteKVStore{
		db:    db,
		table: table,
	}, nil
}

// ReadKey returns data saved for given key. Returns null if there's no data stored.
func (s *SQLiteKVStore) ReadKey(key []byte) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(fmt.Sprintf(`SELECT value FROM %q WHERE key = ?`, s.table), key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *SQLiteKVStore) UpdateKey(key []byte, data []byte) error {
	query := fmt.Sprintf(`INSERT INTO %q (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, s.table)
	if _, err := s.db.Exec(query, key, data); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// DeleteKey removes data stored under given key. Deleting missing key isn't an error.
func (s *SQLiteKVStore) DeleteKey(key []byte) error {
	if _, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %q WHERE key = ?`, s.table), key); err != nil {
		return fmt.Errorf("deleting from db: %w", err)
	}

	return nil
}

// Close closes database.
func (s *SQLiteKVStore) Close() error {
	return s.db.Close()
}
