package domain

// TileMode selects the basemap rendering source for a session.
type TileMode string

const (
	TileModePrimary  TileMode = "primary"
	TileModeFallback TileMode = "fallback"
)

// DirectionsLinks are the external navigation deep links built for a place.
// Opening them is a handoff outside the process boundary; nothing is observed
// back.
type DirectionsLinks struct {
	Label     string `json:"label"`
	GoogleURL string `json:"google_url"`
	AppleURL  string `json:"apple_url"`
	OSMURL    string `json:"osm_url"`
	GeoURI    string `json:"geo_uri"`
}

// SessionState is the snapshot of one map screen instance. State is ephemeral
// and dropped when the session closes (screen unmount).
type SessionState struct {
	ID              string           `json:"id"`
	Platform        Platform         `json:"platform"`
	DeviceID        string           `json:"device_id,omitempty"`
	InitialRegion   Region           `json:"initial_region"`
	FocusRegion     *Region          `json:"focus_region,omitempty"`
	Selected        *Place           `json:"selected,omitempty"`
	CategoryFilter  string           `json:"category_filter,omitempty"`
	MapReady        bool             `json:"map_ready"`
	TileMode        TileMode         `json:"tile_mode"`
	FallbackTileURL string           `json:"fallback_tile_url,omitempty"`
	Advisory        string           `json:"advisory,omitempty"`
	Resolver        ResolverSnapshot `json:"resolver"`
	ShowLocationDot bool             `json:"show_location_dot"`
}
