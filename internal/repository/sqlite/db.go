package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
func Open(path string) (*sql.DB, error) {
	if path != MemoryPath && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// A single connection serialises writers and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return db, nil
}

// Dialect implements docstore.Dialect for JSON text documents.
type Dialect struct{}

func (Dialect) Placeholder(n int) string {
	return "?" + strconv.Itoa(n)
}

func (Dialect) Field(name string) string {
	return "json_extract(doc, '$." + name + "')"
}

func (Dialect) UniqueViolation(err error) (string, bool) {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return "", false
	}
	if serr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT || !strings.Contains(serr.Error(), "UNIQUE") {
		return "", false
	}
	return serr.Error(), true
}
