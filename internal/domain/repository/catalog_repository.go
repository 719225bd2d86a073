package repository

import (
	"context"

	"github.com/findhelp-service/internal/domain"
)

// CatalogRepository loads the bundled static datasets.
type CatalogRepository interface {
	// LoadCatalog returns the place/category catalog. Called once at startup;
	// the result is immutable for the process lifetime.
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)

	// LoadReference returns the emergency numbers and resource links.
	LoadReference(ctx context.Context) (*domain.Reference, error)
}
