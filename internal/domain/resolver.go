package domain

import "time"

// ResolverState is the lifecycle of a location resolution attempt.
type ResolverState string

const (
	ResolverIdle                ResolverState = "idle"
	ResolverPermissionRequested ResolverState = "permission_requested"
	ResolverPermissionDenied    ResolverState = "permission_denied"
	ResolverResolving           ResolverState = "resolving"
	ResolverResolved            ResolverState = "resolved"
	ResolverTimedOut            ResolverState = "timed_out"
	ResolverFailed              ResolverState = "failed"
)

// Terminal reports whether no further transitions can happen.
func (s ResolverState) Terminal() bool {
	switch s {
	case ResolverPermissionDenied, ResolverResolved, ResolverTimedOut, ResolverFailed:
		return true
	}
	return false
}

// Position is a resolved device location. Never persisted.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// Advisory texts shown in the map banner. All resolution failures are
// non-fatal: the map keeps rendering the default or catalog-bounds region.
const (
	AdvisoryPermissionDenied = "Location permission denied - showing default NYC area"
	AdvisoryStillResolving   = "Using NYC area while we determine your location"
	AdvisoryResolveFailed    = "Could not get location - showing default NYC area"
	AdvisoryPermissionError  = "Location error - showing default NYC area"
	AdvisoryTileFallback     = "Primary basemap could not load. Showing OpenStreetMap tiles as a fallback."
	AdvisoryTileError        = "Unable to load the map tiles."
)

// ResolverSnapshot is the thread-safe view of a resolver.
type ResolverSnapshot struct {
	State    ResolverState `json:"state"`
	Position *Position     `json:"position,omitempty"`
	Advisory string        `json:"advisory,omitempty"`
}
