package budgetfx

import (
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/llm"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideExpenseRepo, provideBudgetService)

func provideExpenseRepo(db *gorm.DB) repositories.IExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideBudgetService(
	planRepo repositories.IPlanRepository,
	expenseRepo repositories.IExpenseRepository,
	chat llm.ChatClient,
) services.BudgetServiceInterface {
	return services.NewBudgetService(planRepo, expenseRepo, chat)
}
