package sqliteutil

import (
	"database/sql"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// OpenDB opens a database given a path or libsql url and applies the
// given schema. Schemas are written with `if not exists` semantics in
// mind; an "already exists" failure on re-open is not an error.
func OpenDB(schema, path string) (*sql.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(path, "libsql://") ||
		strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") {
		driver = "libsql"
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, err
	}
	return db, nil
}
