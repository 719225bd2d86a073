package dto

import "github.com/findhelp-service/internal/domain"

// PlacesResponse lists catalog places.
type PlacesResponse struct {
	Places []domain.Place `json:"places"`
	Total  int            `json:"total"`
}

// CategoriesResponse lists the legend categories.
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// RegionResponse is the viewport covering the whole catalog.
type RegionResponse struct {
	Region domain.Region `json:"region"`
}

// DeviceResponse carries the stable anonymous device id.
type DeviceResponse struct {
	DeviceID string `json:"device_id"`
}

// LanguageResponse carries the current app language.
type LanguageResponse struct {
	Language string `json:"language"`
}

// ClickResponse acknowledges a queued click.
type ClickResponse struct {
	Queued bool `json:"queued"`
}

// DeviceLedgerResponse returns the per-place records for one device.
type DeviceLedgerResponse struct {
	DeviceID string                               `json:"device_id"`
	Records  map[string]*domain.InteractionRecord `json:"records"`
}
