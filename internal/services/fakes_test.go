package services

import (
	"context"
	"voyago/internal/models/db_models"
	"voyago/pkg/llm"

	"github.com/google/uuid"
)

// fakeChatClient returns canned responses and records the prompts it saw.
type fakeChatClient struct {
	response    string
	err         error
	chunkSize   int
	lastRequest llm.ChatRequest
}

func (f *fakeChatClient) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeChatClient) Stream(ctx context.Context, req llm.ChatRequest, onDelta func(chunk string)) (string, error) {
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	size := f.chunkSize
	if size <= 0 {
		size = 10
	}
	for i := 0; i < len(f.response); i += size {
		end := i + size
		if end > len(f.response) {
			end = len(f.response)
		}
		if onDelta != nil {
			onDelta(f.response[i:end])
		}
	}
	return f.response, nil
}

type fakePlanRepo struct {
	plans map[string]*db_models.TravelPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*db_models.TravelPlan)}
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *db_models.TravelPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID.String()] = plan
	return nil
}

func (f *fakePlanRepo) ListByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, error) {
	var out []db_models.TravelPlan
	for _, plan := range f.plans {
		if plan.UserID == userID {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, planID, userID string) (*db_models.TravelPlan, error) {
	plan, ok := f.plans[planID]
	if !ok || plan.UserID != userID {
		return nil, nil
	}
	copied := *plan
	return &copied, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *db_models.TravelPlan) error {
	f.plans[plan.ID.String()] = plan
	return nil
}

func (f *fakePlanRepo) Delete(ctx context.Context, planID, userID string) (bool, error) {
	plan, ok := f.plans[planID]
	if !ok || plan.UserID != userID {
		return false, nil
	}
	delete(f.plans, planID)
	return true, nil
}

type fakeExpenseRepo struct {
	expenses []db_models.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *db_models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeExpenseRepo) ListByPlan(ctx context.Context, planID, userID string) ([]db_models.Expense, error) {
	var out []db_models.Expense
	for _, expense := range f.expenses {
		if expense.PlanID.String() == planID && expense.UserID == userID {
			out = append(out, expense)
		}
	}
	return out, nil
}
