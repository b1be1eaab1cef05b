package request_models

type TravelRequest struct {
	Destination string  `json:"destination" binding:"required"`
	Days        int     `json:"days" binding:"required,min=1"`
	Budget      float64 `json:"budget" binding:"required"`
	Travelers   int     `json:"travelers" binding:"required,min=1"`
	Preferences string  `json:"preferences"`
	StartDate   *string `json:"start_date"`
}

type UpdatePlanRequest struct {
	Destination *string  `json:"destination"`
	Days        *int     `json:"days"`
	Budget      *float64 `json:"budget"`
	Travelers   *int     `json:"travelers"`
	Preferences *string  `json:"preferences"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
}
