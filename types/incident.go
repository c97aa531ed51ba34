package types

// Incident is the single reported emergency location. At most one
// exists per session; setting a new one replaces the old.
type Incident struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Facility is the map-marker projection of a hospital: what the map
// panel needs to draw a static pin with a popup.
type Facility struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
	Tags []string `json:"tags"`
	Type string   `json:"type"`
}
