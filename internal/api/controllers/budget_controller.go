package controllers

import (
	"net/http"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

func (b *BudgetController) AddExpense(c *gin.Context) {
	var req request_models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := b.budgetService.AddExpense(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense recorded successfully")
}

func (b *BudgetController) GetExpenses(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	expenses, err := b.budgetService.ListExpenses(c.Request.Context(), planID, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"expenses": expenses}, "Expenses fetched successfully")
}

// Analyze sums spending by category and asks the model for recommendations.
func (b *BudgetController) Analyze(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	analysis, err := b.budgetService.Analyze(c.Request.Context(), planID, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "Budget analysis complete")
}
