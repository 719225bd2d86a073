package domain

import (
	"encoding/json"
	"strings"
)

// EmergencyNumber is one entry of the "Help Now" screen: a dialable phone
// number with display styling tokens.
type EmergencyNumber struct {
	ID          string   `json:"id" validate:"required"`
	Number      string   `json:"number" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color" validate:"omitempty,hexcolor"`
	Gradient    []string `json:"gradient,omitempty"`
}

// DialURI returns the tel: URI handed to the platform dialer.
func (e EmergencyNumber) DialURI() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, e.Number)
	return "tel:" + digits
}

// MarshalJSON includes the derived dial URI so clients receive a ready
// tel: link next to the display number.
func (e EmergencyNumber) MarshalJSON() ([]byte, error) {
	type plain EmergencyNumber
	return json.Marshal(struct {
		plain
		DialURI string `json:"dial_uri"`
	}{plain(e), e.DialURI()})
}

// LinkRef is a secondary labeled link inside a resource entry.
type LinkRef struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// ResourceLink is one entry of the "Resources" screen.
type ResourceLink struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	URL         string    `json:"url" validate:"required,url"`
	ExtraLinks  []LinkRef `json:"extra_links,omitempty" validate:"omitempty,dive"`
	ComingSoon  bool      `json:"coming_soon,omitempty"`
	Gradient    []string  `json:"gradient,omitempty"`
}

// Reference is the bundled static reference dataset.
type Reference struct {
	EmergencyNumbers []EmergencyNumber `json:"emergency_numbers"`
	Resources        []ResourceLink    `json:"resources"`
}
