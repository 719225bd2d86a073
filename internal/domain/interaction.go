package domain

import (
	"encoding/json"
	"time"
)

// Stream names (must match the archive worker's consumer configuration).
const (
	StreamInteractionClick = "stream:interaction:click"
)

// PinSnapshot is the denormalized copy of a place captured at click time, so
// the ledger stays meaningful even if the catalog changes later.
type PinSnapshot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
}

// PinSnapshotFrom captures the click-time view of a place.
func PinSnapshotFrom(p Place) PinSnapshot {
	return PinSnapshot{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Coordinates: p.Coordinates,
		Type:        p.Type,
	}
}

// InteractionRecord accumulates clicks for one (device, place) pair.
// Invariant: ClickCount == len(Timestamps). Timestamps are unix milliseconds.
type InteractionRecord struct {
	PinInfo    PinSnapshot `json:"pinInfo"`
	ClickCount int         `json:"clickCount"`
	Timestamps []int64     `json:"timestamps"`
}

// Ledger maps device id -> place id -> interaction record. It is the JSON
// value stored under KeyPinClicks.
type Ledger map[string]map[string]*InteractionRecord

// ParseLedger deserializes a stored ledger. A missing or corrupt value
// deserializes to an empty ledger; analytics never fail loudly.
func ParseLedger(raw []byte) Ledger {
	if len(raw) == 0 {
		return Ledger{}
	}
	var l Ledger
	if err := json.Unmarshal(raw, &l); err != nil || l == nil {
		return Ledger{}
	}
	return l
}

// RecordClick increments the counter for (deviceID, pin.ID), creating the
// record on first click, and appends ts. Returns the updated record.
func (l Ledger) RecordClick(deviceID string, pin PinSnapshot, ts int64) *InteractionRecord {
	byPlace, ok := l[deviceID]
	if !ok {
		byPlace = make(map[string]*InteractionRecord)
		l[deviceID] = byPlace
	}

	rec, ok := byPlace[pin.ID]
	if !ok {
		rec = &InteractionRecord{
			PinInfo:    pin,
			ClickCount: 0,
			Timestamps: []int64{},
		}
		byPlace[pin.ID] = rec
	}

	rec.ClickCount++
	rec.Timestamps = append(rec.Timestamps, ts)
	return rec
}

// Record returns the record for (deviceID, placeID), or nil.
func (l Ledger) Record(deviceID, placeID string) *InteractionRecord {
	if byPlace, ok := l[deviceID]; ok {
		return byPlace[placeID]
	}
	return nil
}

// ClickEvent is published to StreamInteractionClick for every applied click
// and archived by the interaction worker.
type ClickEvent struct {
	DeviceID  string    `json:"device_id"`
	PlaceID   string    `json:"place_id"`
	PlaceName string    `json:"place_name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Category  string    `json:"category"`
	Services  []string  `json:"services,omitempty"`
	ClickedAt time.Time `json:"clicked_at"`
}

// ClickStats is the aggregate view over archived click events.
type ClickStats struct {
	TotalClicks   int             `json:"total_clicks"`
	UniqueDevices int             `json:"unique_devices"`
	ByCategory    map[string]int  `json:"by_category"`
	TopPlaces     []PlaceClickRow `json:"top_places"`
	LastUpdated   time.Time       `json:"last_updated"`
}

// PlaceClickRow is one row of the top-places breakdown.
type PlaceClickRow struct {
	PlaceID   string `json:"place_id" db:"place_id"`
	PlaceName string `json:"place_name" db:"place_name"`
	Clicks    int    `json:"clicks" db:"clicks"`
}

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
