package domain

// Region is a map viewport: center plus zoom deltas.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

const (
	// boundsPadding widens the catalog extent by 20% so edge pins are not
	// clipped by the viewport.
	boundsPadding = 1.2

	// minRegionDelta keeps the viewport from zooming in past street level
	// when all places are clustered.
	minRegionDelta = 0.01

	// focusRegionDelta is the tight zoom used when a single place is selected.
	focusRegionDelta = 0.01
)

// DefaultRegion is the NYC fallback viewport used whenever no better region
// can be derived.
func DefaultRegion() Region {
	return Region{
		Latitude:       40.7128,
		Longitude:      -74.0060,
		LatitudeDelta:  0.0922,
		LongitudeDelta: 0.0421,
	}
}

// BoundsRegion computes a viewport that covers every given place. An empty
// list falls back to the default region.
func BoundsRegion(places []Place) Region {
	if len(places) == 0 {
		return DefaultRegion()
	}

	minLat := places[0].Coordinates.Latitude
	maxLat := minLat
	minLon := places[0].Coordinates.Longitude
	maxLon := minLon

	for _, p := range places[1:] {
		if p.Coordinates.Latitude < minLat {
			minLat = p.Coordinates.Latitude
		}
		if p.Coordinates.Latitude > maxLat {
			maxLat = p.Coordinates.Latitude
		}
		if p.Coordinates.Longitude < minLon {
			minLon = p.Coordinates.Longitude
		}
		if p.Coordinates.Longitude > maxLon {
			maxLon = p.Coordinates.Longitude
		}
	}

	latDelta := (maxLat - minLat) * boundsPadding
	lonDelta := (maxLon - minLon) * boundsPadding
	if latDelta < minRegionDelta {
		latDelta = minRegionDelta
	}
	if lonDelta < minRegionDelta {
		lonDelta = minRegionDelta
	}

	return Region{
		Latitude:       (minLat + maxLat) / 2,
		Longitude:      (minLon + maxLon) / 2,
		LatitudeDelta:  latDelta,
		LongitudeDelta: lonDelta,
	}
}

// FocusRegion returns the tight viewport centered on a selected place.
func FocusRegion(c Coordinates) Region {
	return Region{
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		LatitudeDelta:  focusRegionDelta,
		LongitudeDelta: focusRegionDelta,
	}
}
