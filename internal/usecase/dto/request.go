package dto

// CreateSessionRequest opens a map session for one screen instance.
type CreateSessionRequest struct {
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
	DeviceID string `json:"device_id"`
}

// SelectPlaceRequest selects a place on the map.
type SelectPlaceRequest struct {
	PlaceID string `json:"place_id" validate:"required"`
}

// SetFilterRequest toggles the active category filter. An empty category
// clears the filter.
type SetFilterRequest struct {
	Category string `json:"category"`
}

// ClickRequest records a pin click for a device.
type ClickRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	PlaceID  string `json:"place_id" validate:"required"`
}

// SetLanguageRequest changes the stored app language.
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}
