package sqlite

import (
	"context"
	"database/sql"
)

const phonemesSchema = `
CREATE TABLE IF NOT EXISTS phonemes (
    position INTEGER PRIMARY KEY,
    type TEXT NOT NULL,
    symbol TEXT NOT NULL UNIQUE,
    x REAL NOT NULL,
    y REAL NOT NULL,
    feature1 TEXT NOT NULL,
    feature2 TEXT NOT NULL,
    feature3 TEXT NOT NULL,
    description TEXT NOT NULL
);
`

const manifestSchema = `
CREATE TABLE IF NOT EXISTS catalog_manifest (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    fingerprint BLOB NOT NULL,
    phonemes INTEGER NOT NULL,
    saved_at INTEGER NOT NULL
);
`

// EnsureSchema creates the phoneme and manifest tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{phonemesSchema, manifestSchema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
