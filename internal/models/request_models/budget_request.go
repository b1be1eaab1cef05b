package request_models

type ExpenseRequest struct {
	PlanID      string  `json:"plan_id" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}
