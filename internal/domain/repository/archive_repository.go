package repository

import (
	"context"

	"github.com/findhelp-service/internal/domain"
)

// ArchiveRepository stores click events durably for analytics.
type ArchiveRepository interface {
	// EnsureSchema creates the archive tables if they do not exist.
	EnsureSchema(ctx context.Context) error

	// InsertClickEvents appends a batch of click events.
	InsertClickEvents(ctx context.Context, events []domain.ClickEvent) error

	// GetClickStats aggregates the archived events.
	GetClickStats(ctx context.Context) (*domain.ClickStats, error)
}
