package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/pkg/utils"
	"github.com/findhelp-service/internal/usecase/dto"
)

// CatalogUseCase serves the static place catalog. The catalog is loaded once
// at construction; places whose type has no matching category are excluded
// from the renderable set but never crash the load.
type CatalogUseCase struct {
	catalog    *domain.Catalog
	renderable []domain.Place
	logger     *zap.Logger
}

func NewCatalogUseCase(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
) (*CatalogUseCase, error) {
	catalog, err := catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	renderable := make([]domain.Place, 0, len(catalog.Places))
	for _, p := range catalog.Places {
		if _, ok := catalog.CategoryByKey(p.Type); !ok {
			logger.Warn("Excluding place with unknown category",
				zap.String("place_id", p.ID),
				zap.String("type", p.Type))
			continue
		}
		renderable = append(renderable, p)
	}

	return &CatalogUseCase{
		catalog:    catalog,
		renderable: renderable,
		logger:     logger,
	}, nil
}

// GetPlaces returns the renderable places, optionally filtered by category.
// Filtering preserves catalog order.
func (uc *CatalogUseCase) GetPlaces(category string) (*dto.PlacesResponse, error) {
	if category == "" {
		return &dto.PlacesResponse{
			Places: uc.renderable,
			Total:  len(uc.renderable),
		}, nil
	}

	if _, ok := uc.catalog.CategoryByKey(category); !ok {
		return nil, errors.ErrUnknownCategory
	}

	filtered := make([]domain.Place, 0, len(uc.renderable))
	for _, p := range uc.renderable {
		if p.Type == category {
			filtered = append(filtered, p)
		}
	}

	return &dto.PlacesResponse{
		Places: filtered,
		Total:  len(filtered),
	}, nil
}

// NearestPlaces returns up to limit renderable places ordered by distance
// from the given point. limit <= 0 returns the whole renderable set.
func (uc *CatalogUseCase) NearestPlaces(lat, lon float64, limit int) (*dto.PlacesResponse, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidRequest
	}

	places := make([]domain.Place, len(uc.renderable))
	copy(places, uc.renderable)

	sort.SliceStable(places, func(i, j int) bool {
		di := utils.HaversineDistance(lat, lon, places[i].Coordinates.Latitude, places[i].Coordinates.Longitude)
		dj := utils.HaversineDistance(lat, lon, places[j].Coordinates.Latitude, places[j].Coordinates.Longitude)
		return di < dj
	})

	if limit > 0 && limit < len(places) {
		places = places[:limit]
	}

	return &dto.PlacesResponse{
		Places: places,
		Total:  len(places),
	}, nil
}

// GetPlace returns a renderable place by id.
func (uc *CatalogUseCase) GetPlace(id string) (*domain.Place, error) {
	for i := range uc.renderable {
		if uc.renderable[i].ID == id {
			return &uc.renderable[i], nil
		}
	}
	return nil, errors.ErrPlaceNotFound
}

// GetCategories returns the legend categories.
func (uc *CatalogUseCase) GetCategories() *dto.CategoriesResponse {
	return &dto.CategoriesResponse{Categories: uc.catalog.Categories}
}

// HasCategory reports whether key is a defined category.
func (uc *CatalogUseCase) HasCategory(key string) bool {
	_, ok := uc.catalog.CategoryByKey(key)
	return ok
}

// BoundsRegion returns the viewport covering every renderable place.
func (uc *CatalogUseCase) BoundsRegion() domain.Region {
	return domain.BoundsRegion(uc.renderable)
}

// Renderable returns the renderable places in catalog order.
func (uc *CatalogUseCase) Renderable() []domain.Place {
	return uc.renderable
}
