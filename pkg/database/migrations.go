package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient transcript search on segments.text and summary
// narrative search on summaries.content.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_segments_text_gin
		ON segments USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create segment text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_summaries_narrative_gin
		ON summaries USING gin(to_tsvector('english', COALESCE(content->>'summary', '')))`)
	if err != nil {
		return fmt.Errorf("failed to create summary narrative GIN index: %w", err)
	}

	return nil
}
