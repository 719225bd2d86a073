package domain

// Platform identifies the client OS a map session runs on.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// FallbackTileURL is the open tile provider used when the primary basemap
// fails on platforms with a known-unstable provider.
const FallbackTileURL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

// Capability describes per-platform map behavior. New platforms are added by
// extending the table, not by branching in the controller.
type Capability struct {
	// UnstableTileProvider marks platforms where the primary tile provider is
	// known to fail; tile errors switch rendering to FallbackTileURL there.
	UnstableTileProvider bool

	// ShowsUserLocationDot marks platforms where the native user-location dot
	// is safe to enable. Where false, clients render a manual marker instead.
	ShowsUserLocationDot bool
}

var capabilities = map[Platform]Capability{
	PlatformIOS:     {UnstableTileProvider: false, ShowsUserLocationDot: true},
	PlatformAndroid: {UnstableTileProvider: true, ShowsUserLocationDot: false},
	PlatformWeb:     {UnstableTileProvider: false, ShowsUserLocationDot: false},
}

// CapabilityFor looks up the capability table. Unknown platforms get the
// zero capability (no fallback switching, no native dot).
func CapabilityFor(p Platform) (Capability, bool) {
	cap, ok := capabilities[p]
	return cap, ok
}
