package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/llm"
	"voyago/pkg/utils"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type BudgetServiceInterface interface {
	AddExpense(ctx context.Context, userID string, req request_models.ExpenseRequest) (*db_models.Expense, error)
	ListExpenses(ctx context.Context, planID, userID string) ([]db_models.Expense, error)
	Analyze(ctx context.Context, planID, userID string) (*response_models.BudgetAnalysis, error)
}

type BudgetService struct {
	planRepo    repositories.IPlanRepository
	expenseRepo repositories.IExpenseRepository
	chat        llm.ChatClient
}

func NewBudgetService(planRepo repositories.IPlanRepository, expenseRepo repositories.IExpenseRepository, chat llm.ChatClient) BudgetServiceInterface {
	return &BudgetService{
		planRepo:    planRepo,
		expenseRepo: expenseRepo,
		chat:        chat,
	}
}

func (b *BudgetService) AddExpense(ctx context.Context, userID string, req request_models.ExpenseRequest) (*db_models.Expense, error) {
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid plan id", utils.ErrInvalidInput)
	}

	plan, err := b.planRepo.GetByID(ctx, req.PlanID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}

	expense := &db_models.Expense{
		UserID:      userID,
		PlanID:      planID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	}

	if err := b.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return expense, nil
}

func (b *BudgetService) ListExpenses(ctx context.Context, planID, userID string) ([]db_models.Expense, error) {
	expenses, err := b.expenseRepo.ListByPlan(ctx, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return expenses, nil
}

func (b *BudgetService) Analyze(ctx context.Context, planID, userID string) (*response_models.BudgetAnalysis, error) {
	plan, err := b.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	expenses, err := b.expenseRepo.ListByPlan(ctx, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	totalSpent := lo.SumBy(expenses, func(e db_models.Expense) float64 { return e.Amount })

	breakdown := make(map[string]float64)
	for _, expense := range expenses {
		category := expense.Category
		if category == "" {
			category = "other"
		}
		breakdown[category] += expense.Amount
	}

	return &response_models.BudgetAnalysis{
		TotalBudget:       plan.Budget,
		TotalSpent:        totalSpent,
		Remaining:         plan.Budget - totalSpent,
		CategoryBreakdown: breakdown,
		Recommendations:   b.recommendations(ctx, plan, totalSpent, breakdown),
	}, nil
}

// recommendations asks the model for budget advice. Failures degrade to a
// single explanatory entry instead of failing the whole analysis.
func (b *BudgetService) recommendations(ctx context.Context, plan *db_models.TravelPlan, totalSpent float64, breakdown map[string]float64) []string {
	encoded, _ := json.Marshal(breakdown)

	prompt := fmt.Sprintf(`Give 3-5 practical budget-management suggestions for this trip.

Total budget: %.2f CNY
Spent so far: %.2f CNY
Remaining: %.2f CNY

Spending by category:
%s

Destination: %s
Trip length: %d days

Return the suggestions as a plain list, one per line, each short and
actionable. Return only the suggestions, nothing else.`,
		plan.Budget, totalSpent, plan.Budget-totalSpent, string(encoded),
		plan.Destination, plan.Days)

	raw, err := b.chat.Complete(ctx, llm.ChatRequest{
		System:      "You are a professional travel budget advisor.",
		User:        prompt,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("Budget recommendation call failed: %v", err)
		return []string{fmt.Sprintf("Could not generate recommendations: %v", err)}
	}

	return ParseRecommendations(raw)
}

// ParseRecommendations splits newline-delimited bullet text into at most five
// clean suggestions, stripping leading bullet and numeral markers.
func ParseRecommendations(raw string) []string {
	var recommendations []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* ")
		line = strings.TrimLeft(line, "0123456789.) ")
		line = strings.TrimSpace(line)
		if len(line) <= 10 {
			continue
		}
		recommendations = append(recommendations, line)
		if len(recommendations) == 5 {
			break
		}
	}
	return recommendations
}
