package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
	"github.com/findhelp-service/internal/pkg/validator"
)

//go:embed data/places.json
var placesData []byte

//go:embed data/reference.json
var referenceData []byte

type staticRepository struct {
	logger *zap.Logger
}

// NewStaticRepository serves the bundled datasets. The data ships with the
// binary; there is no remote catalog source.
func NewStaticRepository(logger *zap.Logger) repository.CatalogRepository {
	return &staticRepository{logger: logger}
}

// LoadCatalog parses and validates the embedded place catalog. Entries
// failing their validate tags (required fields, WGS-84 ranges, hex colors)
// fail the load; places whose type has no matching category are kept (the
// use case excludes them from rendering).
func (r *staticRepository) LoadCatalog(_ context.Context) (*domain.Catalog, error) {
	var catalog domain.Catalog
	if err := json.Unmarshal(placesData, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse place catalog: %w", err)
	}

	for _, cat := range catalog.Categories {
		if err := validator.Validate(&cat); err != nil {
			return nil, fmt.Errorf("invalid category %s: %w", cat.Key, err)
		}
	}

	seen := make(map[string]struct{}, len(catalog.Places))
	for _, p := range catalog.Places {
		if err := validator.Validate(&p); err != nil {
			return nil, fmt.Errorf("invalid place %s: %w", p.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate place id %s", p.ID)
		}
		seen[p.ID] = struct{}{}

		if _, ok := catalog.CategoryByKey(p.Type); !ok {
			r.logger.Warn("Place references unknown category",
				zap.String("place_id", p.ID),
				zap.String("type", p.Type))
		}
	}

	r.logger.Info("Place catalog loaded",
		zap.Int("places", len(catalog.Places)),
		zap.Int("categories", len(catalog.Categories)))
	return &catalog, nil
}

// LoadReference parses the embedded emergency numbers and resource links.
func (r *staticRepository) LoadReference(_ context.Context) (*domain.Reference, error) {
	var ref domain.Reference
	if err := json.Unmarshal(referenceData, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}

	for _, n := range ref.EmergencyNumbers {
		if err := validator.Validate(&n); err != nil {
			return nil, fmt.Errorf("invalid emergency number %s: %w", n.ID, err)
		}
	}
	for _, res := range ref.Resources {
		if err := validator.Validate(&res); err != nil {
			return nil, fmt.Errorf("invalid resource %s: %w", res.ID, err)
		}
	}

	r.logger.Info("Reference data loaded",
		zap.Int("emergency_numbers", len(ref.EmergencyNumbers)),
		zap.Int("resources", len(ref.Resources)))
	return &ref, nil
}
