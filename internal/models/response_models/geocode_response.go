package response_models

type GeocodeResponse struct {
	Lng              float64 `json:"lng"`
	Lat              float64 `json:"lat"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	Name             string  `json:"name,omitempty"`
}

type RouteStep struct {
	Instruction string `json:"instruction"`
	Road        string `json:"road"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Polyline    string `json:"polyline"`
}

type RouteResponse struct {
	Distance float64     `json:"distance"` // meters
	Duration float64     `json:"duration"` // seconds
	Steps    []RouteStep `json:"steps"`
	Polyline string      `json:"polyline"`
}
