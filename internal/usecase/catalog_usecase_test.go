package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/pkg/errors"
	"github.com/findhelp-service/internal/usecase"
)

func newCatalogUseCase(t *testing.T) *usecase.CatalogUseCase {
	t.Helper()

	mockCatalog := &MockCatalogRepository{}
	mockCatalog.On("LoadCatalog", mock.Anything).Return(testCatalog(), nil)

	uc, err := usecase.NewCatalogUseCase(context.Background(), mockCatalog, zap.NewNop())
	require.NoError(t, err)
	return uc
}

func TestCatalogLoad(t *testing.T) {
	t.Run("load failure propagates", func(t *testing.T) {
		mockCatalog := &MockCatalogRepository{}
		mockCatalog.On("LoadCatalog", mock.Anything).Return(nil, assert.AnError)

		_, err := usecase.NewCatalogUseCase(context.Background(), mockCatalog, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("places with unknown category are excluded", func(t *testing.T) {
		uc := newCatalogUseCase(t)

		renderable := uc.Renderable()
		require.Len(t, renderable, 3)
		for _, p := range renderable {
			assert.NotEqual(t, "orphan", p.ID)
		}
	})
}

func TestCatalogGetPlaces(t *testing.T) {
	uc := newCatalogUseCase(t)

	t.Run("empty filter returns everything in order", func(t *testing.T) {
		resp, err := uc.GetPlaces("")
		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)
		assert.Equal(t, "p1", resp.Places[0].ID)
		assert.Equal(t, "p2", resp.Places[1].ID)
		assert.Equal(t, "p3", resp.Places[2].ID)
	})

	t.Run("category filter preserves order", func(t *testing.T) {
		resp, err := uc.GetPlaces("harm-reduction")
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "p1", resp.Places[0].ID)
		assert.Equal(t, "p3", resp.Places[1].ID)
	})

	t.Run("single match", func(t *testing.T) {
		resp, err := uc.GetPlaces("health")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := uc.GetPlaces("bogus")
		assert.Equal(t, errors.ErrUnknownCategory, err)
	})
}

func TestCatalogNearestPlaces(t *testing.T) {
	uc := newCatalogUseCase(t)

	t.Run("orders by distance", func(t *testing.T) {
		resp, err := uc.NearestPlaces(40.83, -73.92, 0)
		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)
		assert.Equal(t, "p3", resp.Places[0].ID)
		assert.Equal(t, "p1", resp.Places[1].ID)
		assert.Equal(t, "p2", resp.Places[2].ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		resp, err := uc.NearestPlaces(40.83, -73.92, 2)
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "p3", resp.Places[0].ID)
		assert.Equal(t, "p1", resp.Places[1].ID)
	})

	t.Run("catalog order is untouched", func(t *testing.T) {
		_, err := uc.NearestPlaces(40.74, -73.98, 0)
		require.NoError(t, err)

		resp, err := uc.GetPlaces("")
		require.NoError(t, err)
		assert.Equal(t, "p1", resp.Places[0].ID)
	})

	t.Run("out-of-range coordinates are rejected", func(t *testing.T) {
		_, err := uc.NearestPlaces(91, 0, 0)
		assert.Equal(t, errors.ErrInvalidRequest, err)
	})
}

func TestCatalogGetPlace(t *testing.T) {
	uc := newCatalogUseCase(t)

	t.Run("known place", func(t *testing.T) {
		place, err := uc.GetPlace("p2")
		require.NoError(t, err)
		assert.Equal(t, "Clinic Two", place.Name)
	})

	t.Run("excluded place is not found", func(t *testing.T) {
		_, err := uc.GetPlace("orphan")
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})

	t.Run("missing place", func(t *testing.T) {
		_, err := uc.GetPlace("nope")
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})
}

func TestCatalogCategoriesAndBounds(t *testing.T) {
	uc := newCatalogUseCase(t)

	t.Run("categories in catalog order", func(t *testing.T) {
		resp := uc.GetCategories()
		require.Len(t, resp.Categories, 2)
		assert.Equal(t, "harm-reduction", resp.Categories[0].Key)
		assert.Equal(t, "health", resp.Categories[1].Key)
	})

	t.Run("has category", func(t *testing.T) {
		assert.True(t, uc.HasCategory("health"))
		assert.False(t, uc.HasCategory("bogus"))
	})

	t.Run("bounds cover only renderable places", func(t *testing.T) {
		region := uc.BoundsRegion()
		// Renderable places span lat 40.74..40.82, lon -73.98..-73.93.
		assert.InDelta(t, 40.78, region.Latitude, 1e-9)
		assert.InDelta(t, -73.955, region.Longitude, 1e-9)
	})
}

func TestReferenceUseCase(t *testing.T) {
	ref := &domain.Reference{
		EmergencyNumbers: []domain.EmergencyNumber{
			{ID: "emergency", Number: "911", Title: "Emergency"},
			{ID: "crisis", Number: "988", Title: "Crisis Line"},
		},
		Resources: []domain.ResourceLink{
			{ID: "snap", Title: "Food Assistance", Description: "Apply for SNAP", URL: "https://example.org/snap"},
		},
	}

	mockCatalog := &MockCatalogRepository{}
	mockCatalog.On("LoadReference", mock.Anything).Return(ref, nil)

	uc, err := usecase.NewReferenceUseCase(context.Background(), mockCatalog, zap.NewNop())
	require.NoError(t, err)

	t.Run("numbers in display order", func(t *testing.T) {
		numbers := uc.GetEmergencyNumbers()
		require.Len(t, numbers, 2)
		assert.Equal(t, "911", numbers[0].Number)
		assert.Equal(t, "988", numbers[1].Number)
	})

	t.Run("resources in display order", func(t *testing.T) {
		resources := uc.GetResources()
		require.Len(t, resources, 1)
		assert.Equal(t, "Food Assistance", resources[0].Title)
	})

	t.Run("load failure propagates", func(t *testing.T) {
		failing := &MockCatalogRepository{}
		failing.On("LoadReference", mock.Anything).Return(nil, assert.AnError)

		_, err := usecase.NewReferenceUseCase(context.Background(), failing, zap.NewNop())
		assert.Error(t, err)
	})
}
