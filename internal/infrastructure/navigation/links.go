package navigation

import (
	"fmt"
	"net/url"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

type linkBuilder struct{}

// NewLinkBuilder builds deep links into external map applications. Clients
// open whichever link their platform handles; nothing is tracked.
func NewLinkBuilder() repository.DirectionsProvider {
	return &linkBuilder{}
}

func (b *linkBuilder) BuildLinks(place domain.Place) domain.DirectionsLinks {
	lat := place.Coordinates.Latitude
	lon := place.Coordinates.Longitude
	label := place.Name

	return domain.DirectionsLinks{
		Label: label,
		GoogleURL: fmt.Sprintf(
			"https://www.google.com/maps/dir/?api=1&destination=%f,%f&destination_place_id=%s",
			lat, lon, url.QueryEscape(place.ID),
		),
		AppleURL: fmt.Sprintf(
			"https://maps.apple.com/?daddr=%f,%f&q=%s",
			lat, lon, url.QueryEscape(label),
		),
		OSMURL: fmt.Sprintf(
			"https://www.openstreetmap.org/directions?to=%f,%f",
			lat, lon,
		),
		GeoURI: fmt.Sprintf("geo:%f,%f?q=%f,%f(%s)", lat, lon, lat, lon, url.QueryEscape(label)),
	}
}
