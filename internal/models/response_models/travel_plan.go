package response_models

// TravelPlanResponse is the saved plan merged with the estimated cost read
// from the itinerary's cost breakdown.
type TravelPlanResponse struct {
	ID            string                 `json:"id"`
	Destination   string                 `json:"destination"`
	Days          int                    `json:"days"`
	Budget        float64                `json:"budget"`
	Travelers     int                    `json:"travelers"`
	Preferences   string                 `json:"preferences"`
	StartDate     *string                `json:"start_date,omitempty"`
	EndDate       *string                `json:"end_date,omitempty"`
	Itinerary     map[string]interface{} `json:"itinerary"`
	EstimatedCost float64                `json:"estimated_cost"`
	CreatedAt     int64                  `json:"created_at"`
}

// ProgressEvent is one SSE frame of the streamed plan-generation endpoint.
// A non-empty Error field is terminal for the consumer.
type ProgressEvent struct {
	Progress *int                `json:"progress,omitempty"`
	Message  string              `json:"message,omitempty"`
	Result   *TravelPlanResponse `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
}
