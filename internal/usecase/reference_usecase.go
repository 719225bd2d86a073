package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

// ReferenceUseCase serves the static emergency numbers and resource links.
type ReferenceUseCase struct {
	reference *domain.Reference
	logger    *zap.Logger
}

func NewReferenceUseCase(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
) (*ReferenceUseCase, error) {
	ref, err := catalogRepo.LoadReference(ctx)
	if err != nil {
		return nil, err
	}

	return &ReferenceUseCase{
		reference: ref,
		logger:    logger,
	}, nil
}

// GetEmergencyNumbers returns the dialable numbers in display order.
func (uc *ReferenceUseCase) GetEmergencyNumbers() []domain.EmergencyNumber {
	return uc.reference.EmergencyNumbers
}

// GetResources returns the resource links in display order.
func (uc *ReferenceUseCase) GetResources() []domain.ResourceLink {
	return uc.reference.Resources
}
