package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on instruction text and
// completion content.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_instructions_text_gin
		ON instructions USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create instruction text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_completion_blocks_content_gin
		ON completion_blocks USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create block content GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. At most one system completion per report may be
// in_progress at a time — one running turn per report.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS completion_report_id_active_turn
		ON completions (report_id)
		WHERE role = 'system' AND status = 'in_progress'`)
	if err != nil {
		return fmt.Errorf("failed to create active turn index: %w", err)
	}

	return nil
}
