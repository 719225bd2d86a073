package domain

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" db:"longitude" validate:"min=-180,max=180"`
}

// Place is a point of interest from the static catalog. Loaded once at
// process start and immutable afterwards.
type Place struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Address     string      `json:"address" validate:"required"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type" validate:"required"`
	Services    []string    `json:"services,omitempty"`
}

// Category describes a legend entry for a place type.
type Category struct {
	Key   string `json:"key" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,hexcolor"`
	Icon  string `json:"icon" validate:"required"`
}

// Catalog is the bundled static dataset.
type Catalog struct {
	Places     []Place    `json:"places"`
	Categories []Category `json:"categories"`
}

// CategoryByKey resolves a category key. The second return value is false for
// keys that are not defined; callers must treat such places as unknown and
// exclude them from rendering rather than fail.
func (c *Catalog) CategoryByKey(key string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}
