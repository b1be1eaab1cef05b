package response_models

type BudgetAnalysis struct {
	TotalBudget       float64            `json:"total_budget"`
	TotalSpent        float64            `json:"total_spent"`
	Remaining         float64            `json:"remaining"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	Recommendations   []string           `json:"recommendations"`
}
