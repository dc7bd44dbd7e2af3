package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open returns a handle for the database at url. The connection itself is
// established lazily; callers ping to find out whether the store is reachable.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	return db, nil
}
