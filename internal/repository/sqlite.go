package repository

import (
	"context"
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite"
)

const correctionsSchema = `
CREATE TABLE IF NOT EXISTS corrections (
	id          TEXT PRIMARY KEY,
	company     TEXT NOT NULL,
	description TEXT NOT NULL,
	account     TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_corrections_company ON corrections(company);
`

// Open opens (creating if needed) the corrections database at path and
// applies the schema. Use ":memory:" for an in-memory database.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	logger.Info("opening corrections database", "path", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}
	if _, err := db.ExecContext(ctx, correctionsSchema); err != nil {
		logger.Error("failed to apply schema", "error", err)
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
