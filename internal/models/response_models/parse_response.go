package response_models

// ParsedTravelInfo is a best-effort structured guess of plan fields extracted
// from free text. Every field is independently nullable.
type ParsedTravelInfo struct {
	Destination *string  `json:"destination"`
	Days        *int     `json:"days"`
	Budget      *float64 `json:"budget"`
	Travelers   *int     `json:"travelers"`
	Preferences *string  `json:"preferences"`
	StartDate   *string  `json:"start_date"` // YYYY-MM-DD
}
