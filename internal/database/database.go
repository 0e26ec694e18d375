package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// schema is applied on every startup; all statements are idempotent.
// Entity ids are opaque uuid strings generated by the service layer, so the
// tables carry no serial keys. Purchase and usage records live embedded in
// their item row as JSONB arrays; they have no identity of their own.
const schema = `
CREATE TABLE IF NOT EXISTS residents (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id            TEXT PRIMARY KEY,
    resident_id   TEXT NOT NULL,
    name          TEXT NOT NULL,
    quantity      INTEGER NOT NULL DEFAULT 0,
    used          INTEGER NOT NULL DEFAULT 0,
    min_quantity  INTEGER NOT NULL DEFAULT 0,
    source        TEXT NOT NULL DEFAULT 'purchased',
    purchases     JSONB NOT NULL DEFAULT '[]'::jsonb,
    usage_history JSONB NOT NULL DEFAULT '[]'::jsonb
);

CREATE INDEX IF NOT EXISTS idx_items_resident_id ON items (resident_id);

CREATE TABLE IF NOT EXISTS status_checks (
    id          TEXT PRIMARY KEY,
    client_name TEXT NOT NULL,
    timestamp   TIMESTAMPTZ NOT NULL
);
`

// Connect opens the database named by dbName on the server described by
// connStr, verifies the connection and applies the schema. The returned
// handle owns its connection pool; the caller is responsible for closing it
// on shutdown.
func Connect(connStr, dbName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", fmt.Sprintf("%s dbname=%s", connStr, dbName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// applySchema executes the embedded table definitions.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}
	return nil
}
