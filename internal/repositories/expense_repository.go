package repositories

import (
	"context"
	"voyago/internal/models/db_models"

	"gorm.io/gorm"
)

type IExpenseRepository interface {
	Create(ctx context.Context, expense *db_models.Expense) error
	ListByPlan(ctx context.Context, planID, userID string) ([]db_models.Expense, error)
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) IExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (e *ExpenseRepository) Create(ctx context.Context, expense *db_models.Expense) error {
	return e.db.WithContext(ctx).Create(expense).Error
}

func (e *ExpenseRepository) ListByPlan(ctx context.Context, planID, userID string) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := e.db.WithContext(ctx).
		Where("plan_id = ? AND user_id = ?", planID, userID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
