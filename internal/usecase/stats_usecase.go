package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

// StatsUseCase aggregates archived click events.
type StatsUseCase struct {
	archive repository.ArchiveRepository
	logger  *zap.Logger
}

func NewStatsUseCase(archive repository.ArchiveRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		archive: archive,
		logger:  logger,
	}
}

// GetClickStats returns totals, per-category counts and the top places.
func (uc *StatsUseCase) GetClickStats(ctx context.Context) (*domain.ClickStats, error) {
	stats, err := uc.archive.GetClickStats(ctx)
	if err != nil {
		uc.logger.Error("Failed to get click stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
