package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

const interactionSchema = `
CREATE TABLE IF NOT EXISTS interaction_events (
	id          BIGSERIAL PRIMARY KEY,
	device_id   TEXT NOT NULL,
	place_id    TEXT NOT NULL,
	place_name  TEXT NOT NULL,
	address     TEXT NOT NULL DEFAULT '',
	latitude    DOUBLE PRECISION NOT NULL,
	longitude   DOUBLE PRECISION NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	services    TEXT[] NOT NULL DEFAULT '{}',
	clicked_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interaction_events_place ON interaction_events (place_id);
CREATE INDEX IF NOT EXISTS idx_interaction_events_device ON interaction_events (device_id);
CREATE INDEX IF NOT EXISTS idx_interaction_events_clicked_at ON interaction_events (clicked_at);
`

type interactionRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewInteractionRepository creates the PostgreSQL-backed click archive.
func NewInteractionRepository(db *DB, logger *zap.Logger) repository.ArchiveRepository {
	return &interactionRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the archive table and indexes if missing.
func (r *interactionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.DB.ExecContext(ctx, interactionSchema); err != nil {
		return fmt.Errorf("ensure interaction schema: %w", err)
	}
	return nil
}

// InsertClickEvents appends a batch of click events inside one transaction.
func (r *interactionRepository) InsertClickEvents(ctx context.Context, events []domain.ClickEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO interaction_events
			(device_id, place_id, place_name, address, latitude, longitude, category, services, clicked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, e := range events {
		_, err := tx.ExecContext(ctx, query,
			e.DeviceID,
			e.PlaceID,
			e.PlaceName,
			e.Address,
			e.Latitude,
			e.Longitude,
			e.Category,
			pq.Array(e.Services),
			e.ClickedAt,
		)
		if err != nil {
			return fmt.Errorf("insert click event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit click events: %w", err)
	}

	r.logger.Debug("Click events archived", zap.Int("count", len(events)))
	return nil
}

// GetClickStats aggregates the archived events.
func (r *interactionRepository) GetClickStats(ctx context.Context) (*domain.ClickStats, error) {
	stats := &domain.ClickStats{
		ByCategory:  make(map[string]int),
		LastUpdated: time.Now(),
	}

	totalsQuery := `
		SELECT COUNT(*), COUNT(DISTINCT device_id)
		FROM interaction_events
	`
	if err := r.db.DB.QueryRowContext(ctx, totalsQuery).Scan(&stats.TotalClicks, &stats.UniqueDevices); err != nil {
		return nil, fmt.Errorf("query click totals: %w", err)
	}

	categoryQuery := `
		SELECT category, COUNT(*) as count
		FROM interaction_events
		GROUP BY category
	`
	rows, err := r.db.DB.QueryContext(ctx, categoryQuery)
	if err != nil {
		return nil, fmt.Errorf("query category stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category stats: %w", err)
		}
		stats.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category stats rows error: %w", err)
	}

	topQuery := `
		SELECT place_id, place_name, COUNT(*) as clicks
		FROM interaction_events
		GROUP BY place_id, place_name
		ORDER BY clicks DESC
		LIMIT 10
	`
	var top []domain.PlaceClickRow
	if err := r.db.DB.SelectContext(ctx, &top, topQuery); err != nil {
		return nil, fmt.Errorf("query top places: %w", err)
	}
	stats.TopPlaces = top

	return stats, nil
}
