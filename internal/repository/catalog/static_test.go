package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/pkg/validator"
	"github.com/findhelp-service/internal/repository/catalog"
)

func TestLoadCatalog(t *testing.T) {
	repo := catalog.NewStaticRepository(zap.NewNop())

	c, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, c.Places)
	assert.NotEmpty(t, c.Categories)

	t.Run("every place resolves to a category", func(t *testing.T) {
		for _, p := range c.Places {
			_, ok := c.CategoryByKey(p.Type)
			assert.True(t, ok, "place %s has unknown type %s", p.ID, p.Type)
		}
	})

	t.Run("place ids are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, p := range c.Places {
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("unknown category lookup misses", func(t *testing.T) {
		_, ok := c.CategoryByKey("does-not-exist")
		assert.False(t, ok)
	})
}

func TestCatalogEntryValidation(t *testing.T) {
	t.Run("place without an address is rejected", func(t *testing.T) {
		p := domain.Place{
			ID:   "bad",
			Name: "No Address",
			Type: "health",
		}
		assert.Error(t, validator.Validate(&p))
	})

	t.Run("out-of-range latitude is rejected", func(t *testing.T) {
		p := domain.Place{
			ID:          "bad",
			Name:        "Off The Map",
			Address:     "1 Nowhere St",
			Type:        "health",
			Coordinates: domain.Coordinates{Latitude: 95, Longitude: 0},
		}
		assert.Error(t, validator.Validate(&p))
	})

	t.Run("category with a non-hex color is rejected", func(t *testing.T) {
		c := domain.Category{
			Key:   "bad",
			Name:  "Bad",
			Color: "red",
			Icon:  "x",
		}
		assert.Error(t, validator.Validate(&c))
	})
}

func TestLoadReference(t *testing.T) {
	repo := catalog.NewStaticRepository(zap.NewNop())

	ref, err := repo.LoadReference(context.Background())
	require.NoError(t, err)

	require.Len(t, ref.EmergencyNumbers, 4)
	assert.Equal(t, "911", ref.EmergencyNumbers[0].Number)
	assert.Equal(t, "988", ref.EmergencyNumbers[2].Number)
	assert.Equal(t, "18778467369", ref.EmergencyNumbers[3].Number)

	assert.NotEmpty(t, ref.Resources)
	for _, r := range ref.Resources {
		assert.NotEmpty(t, r.URL, "resource %s has no url", r.ID)
	}
}
