package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/infrastructure/navigation"
)

func TestBuildLinks(t *testing.T) {
	builder := navigation.NewLinkBuilder()

	place := domain.Place{
		ID:   "onpoint-east-harlem",
		Name: "OnPoint NYC - East Harlem",
		Coordinates: domain.Coordinates{
			Latitude:  40.8075,
			Longitude: -73.9370,
		},
	}

	links := builder.BuildLinks(place)

	assert.Equal(t, place.Name, links.Label)
	assert.Contains(t, links.GoogleURL, "google.com/maps/dir")
	assert.Contains(t, links.GoogleURL, "40.807500,-73.937000")
	assert.Contains(t, links.AppleURL, "maps.apple.com")
	assert.Contains(t, links.OSMURL, "openstreetmap.org/directions")
	assert.Contains(t, links.GeoURI, "geo:40.807500,-73.937000")
}
