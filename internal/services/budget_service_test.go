package services

import (
	"context"
	"fmt"
	"testing"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlan(t *testing.T, repo *fakePlanRepo, userID string, budget float64) *db_models.TravelPlan {
	t.Helper()
	plan := &db_models.TravelPlan{
		UserID:      userID,
		Destination: "Kyoto",
		Days:        3,
		Budget:      budget,
	}
	require.NoError(t, repo.Create(context.Background(), plan))
	return plan
}

func TestAddExpenseRejectsMalformedPlanID(t *testing.T) {
	svc := NewBudgetService(newFakePlanRepo(), &fakeExpenseRepo{}, &fakeChatClient{})

	_, err := svc.AddExpense(context.Background(), "user-1", request_models.ExpenseRequest{
		PlanID:   "not-a-uuid",
		Category: "food",
		Amount:   50,
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddExpenseRequiresExistingPlan(t *testing.T) {
	svc := NewBudgetService(newFakePlanRepo(), &fakeExpenseRepo{}, &fakeChatClient{})

	_, err := svc.AddExpense(context.Background(), "user-1", request_models.ExpenseRequest{
		PlanID:   uuid.NewString(),
		Category: "food",
		Amount:   50,
	})
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestAddExpenseDefaultsDate(t *testing.T) {
	planRepo := newFakePlanRepo()
	plan := seedPlan(t, planRepo, "user-1", 5000)
	svc := NewBudgetService(planRepo, &fakeExpenseRepo{}, &fakeChatClient{})

	expense, err := svc.AddExpense(context.Background(), "user-1", request_models.ExpenseRequest{
		PlanID:   plan.ID.String(),
		Category: "transport",
		Amount:   120,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, expense.Date)
	assert.Equal(t, plan.ID, expense.PlanID)
}

func TestAnalyzeComputesRemainingAndBreakdown(t *testing.T) {
	planRepo := newFakePlanRepo()
	plan := seedPlan(t, planRepo, "user-1", 5000)
	expenseRepo := &fakeExpenseRepo{}
	chat := &fakeChatClient{response: "1. Book trains in advance to save money\n2. Eat lunch sets instead of dinner courses"}
	svc := NewBudgetService(planRepo, expenseRepo, chat)

	for _, e := range []request_models.ExpenseRequest{
		{PlanID: plan.ID.String(), Category: "food", Amount: 300},
		{PlanID: plan.ID.String(), Category: "food", Amount: 200},
		{PlanID: plan.ID.String(), Category: "", Amount: 150},
	} {
		_, err := svc.AddExpense(context.Background(), "user-1", e)
		require.NoError(t, err)
	}

	analysis, err := svc.Analyze(context.Background(), plan.ID.String(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 5000.0, analysis.TotalBudget)
	assert.Equal(t, 650.0, analysis.TotalSpent)
	assert.Equal(t, 4350.0, analysis.Remaining)
	assert.Equal(t, 500.0, analysis.CategoryBreakdown["food"])
	assert.Equal(t, 150.0, analysis.CategoryBreakdown["other"])
	assert.Len(t, analysis.Recommendations, 2)
	assert.Equal(t, "Book trains in advance to save money", analysis.Recommendations[0])
}

func TestAnalyzeWithNoExpenses(t *testing.T) {
	planRepo := newFakePlanRepo()
	plan := seedPlan(t, planRepo, "user-1", 2000)
	svc := NewBudgetService(planRepo, &fakeExpenseRepo{}, &fakeChatClient{response: "Set aside a daily allowance and track it"})

	analysis, err := svc.Analyze(context.Background(), plan.ID.String(), "user-1")
	require.NoError(t, err)

	assert.Zero(t, analysis.TotalSpent)
	assert.Equal(t, 2000.0, analysis.Remaining)
	assert.Empty(t, analysis.CategoryBreakdown)
}

func TestAnalyzePlanNotFound(t *testing.T) {
	svc := NewBudgetService(newFakePlanRepo(), &fakeExpenseRepo{}, &fakeChatClient{})

	_, err := svc.Analyze(context.Background(), uuid.NewString(), "user-1")
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestAnalyzeDegradesWhenModelFails(t *testing.T) {
	planRepo := newFakePlanRepo()
	plan := seedPlan(t, planRepo, "user-1", 2000)
	svc := NewBudgetService(planRepo, &fakeExpenseRepo{}, &fakeChatClient{err: fmt.Errorf("rate limited")})

	analysis, err := svc.Analyze(context.Background(), plan.ID.String(), "user-1")
	require.NoError(t, err)
	require.Len(t, analysis.Recommendations, 1)
	assert.Contains(t, analysis.Recommendations[0], "Could not generate recommendations")
}

func TestParseRecommendations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "strips bullets and numerals",
			raw:  "- Take the metro instead of taxis\n• Buy attraction tickets online in advance\n2) Share large dishes between travelers",
			want: []string{
				"Take the metro instead of taxis",
				"Buy attraction tickets online in advance",
				"Share large dishes between travelers",
			},
		},
		{
			name: "drops short lines",
			raw:  "OK\nSure:\nPrefer lunch menus over dinner menus",
			want: []string{"Prefer lunch menus over dinner menus"},
		},
		{
			name: "caps at five",
			raw:  "1. Compare hotel prices across booking sites\n2. Travel off-peak whenever possible\n3. Use city transport passes for the week\n4. Cook simple breakfasts at the hotel\n5. Set a fixed daily spending limit now\n6. Skip the airport currency exchange desks",
			want: []string{
				"Compare hotel prices across booking sites",
				"Travel off-peak whenever possible",
				"Use city transport passes for the week",
				"Cook simple breakfasts at the hotel",
				"Set a fixed daily spending limit now",
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRecommendations(tt.raw))
		})
	}
}
