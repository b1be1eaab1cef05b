package repositories

import (
	"context"
	"errors"
	"voyago/internal/models/db_models"

	"gorm.io/gorm"
)

type IPlanRepository interface {
	Create(ctx context.Context, plan *db_models.TravelPlan) error
	ListByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, error)
	GetByID(ctx context.Context, planID, userID string) (*db_models.TravelPlan, error)
	Update(ctx context.Context, plan *db_models.TravelPlan) error
	// Delete removes the plan and its expense rows in one transaction.
	// Returns false when no row matched (plan, user).
	Delete(ctx context.Context, planID, userID string) (bool, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) Create(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) ListByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *PlanRepository) GetByID(ctx context.Context, planID, userID string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := p.db.WithContext(ctx).
		First(&plan, "id = ? AND user_id = ?", planID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *PlanRepository) Update(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p *PlanRepository) Delete(ctx context.Context, planID, userID string) (bool, error) {
	var deleted bool
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", planID, userID).
			Delete(&db_models.TravelPlan{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("plan_id = ? AND user_id = ?", planID, userID).
			Delete(&db_models.Expense{}).Error
	})
	return deleted, err
}
