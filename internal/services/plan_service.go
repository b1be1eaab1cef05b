package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/jsonrepair"
	"voyago/pkg/llm"
	"voyago/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, userID string, req request_models.TravelRequest) (*response_models.TravelPlanResponse, error)

	// CreatePlanStream runs the same generation pipeline while emitting
	// progress events. A returned error means the caller must emit a
	// terminal error event; emit failures (client gone) abort generation.
	CreatePlanStream(ctx context.Context, userID string, req request_models.TravelRequest, emit func(response_models.ProgressEvent) error) error

	ListPlans(ctx context.Context, userID string) ([]response_models.TravelPlanResponse, error)
	GetPlan(ctx context.Context, planID, userID string) (*response_models.TravelPlanResponse, error)
	UpdatePlan(ctx context.Context, planID, userID string, req request_models.UpdatePlanRequest) (*response_models.TravelPlanResponse, error)
	DeletePlan(ctx context.Context, planID, userID string) error
}

type PlanService struct {
	planRepo repositories.IPlanRepository
	chat     llm.ChatClient
}

func NewPlanService(planRepo repositories.IPlanRepository, chat llm.ChatClient) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		chat:     chat,
	}
}

func planSystemPrompt(currentYear int) string {
	return fmt.Sprintf(`You are a professional travel planner who produces detailed trip itineraries.

Important date context:
- The current year is %d
- "this year" means %d and "next year" means %d
- Schedule itinerary dates against the real %d calendar

Strict output rules:
1. Return JSON only, with no surrounding text
2. All field names and string values use double quotes
3. No single quotes anywhere
4. No comments inside the JSON
5. Every bracket must be closed
6. No trailing comma after the last element of an array or object`,
		currentYear, currentYear, currentYear+1, currentYear)
}

func buildPlanPrompt(req request_models.TravelRequest, now time.Time) string {
	currentYear := now.Year()

	startDate := "not specified"
	if req.StartDate != nil && *req.StartDate != "" {
		startDate = *req.StartDate
	}

	return fmt.Sprintf(`Generate a detailed travel plan for the following request.

Date context: today is %s, the current year is %d. "This year" means %d; "next year" means %d.

Destination: %s
Trip length: %d days
Budget: %.2f CNY
Travelers: %d
Preferences: %s
Start date: %s

Return a JSON travel plan containing:
1. A detailed itinerary for each day (attractions, restaurants, accommodation)
2. Transportation suggestions
3. An estimated cost per item
4. A total cost breakdown
5. Tips and special notes

Example of the expected shape:
{
    "days": [
        {
            "day": 1,
            "date": "day one",
            "activities": [
                {
                    "time": "09:00",
                    "type": "attraction",
                    "name": "attraction name",
                    "description": "details",
                    "estimated_cost": 100,
                    "location": {"lat": 35.6762, "lng": 139.6503},
                    "duration": "2 hours"
                }
            ],
            "meals": [
                {
                    "time": "12:00",
                    "type": "lunch",
                    "restaurant": "restaurant name",
                    "cuisine": "cuisine",
                    "estimated_cost": 150
                }
            ],
            "accommodation": {
                "name": "hotel name",
                "type": "hotel type",
                "estimated_cost": 500
            }
        }
    ],
    "transportation": {
        "outbound": {"method": "flight", "cost": 2000},
        "local": {"method": "metro + taxi", "estimated_daily_cost": 100},
        "return": {"method": "flight", "cost": 2000}
    },
    "cost_breakdown": {
        "transportation": 5000,
        "accommodation": 3000,
        "food": 2000,
        "activities": 1500,
        "shopping": 500,
        "total": 12000
    },
    "tips": [
        "tip 1",
        "tip 2"
    ]
}

Return valid JSON only: double-quoted keys and strings, no comments, no
trailing commas, no prefix or suffix text of any kind.`,
		now.Format("2006-01-02"), currentYear, currentYear, currentYear+1,
		req.Destination, req.Days, req.Budget, req.Travelers, req.Preferences, startDate)
}

// parseItinerary applies the ordered strategy chain to a raw model response
// and reports which strategy produced the result.
func parseItinerary(raw string, req request_models.TravelRequest) (map[string]interface{}, error) {
	candidate, err := jsonrepair.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelResponseInvalid, err)
	}

	result, err := jsonrepair.Parse(candidate, jsonrepair.SkeletonSpec{
		Days:        req.Days,
		Destination: req.Destination,
		Budget:      req.Budget,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelResponseInvalid, err)
	}

	if result.Strategy != jsonrepair.StrategyDirect {
		log.Printf("Itinerary parsed via %s strategy", result.Strategy)
	}
	return result.Value, nil
}

// estimatedCost reads cost_breakdown.total from the itinerary, defaulting to 0.
func estimatedCost(itinerary map[string]interface{}) float64 {
	breakdown, ok := itinerary["cost_breakdown"].(map[string]interface{})
	if !ok {
		return 0
	}
	total, ok := breakdown["total"].(float64)
	if !ok {
		return 0
	}
	return total
}

func (p *PlanService) persistPlan(ctx context.Context, userID string, req request_models.TravelRequest, itinerary map[string]interface{}) (*response_models.TravelPlanResponse, error) {
	encoded, err := json.Marshal(itinerary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	plan := &db_models.TravelPlan{
		UserID:      userID,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		Days:        req.Days,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Preferences: req.Preferences,
		Itinerary:   encoded,
	}

	if err := p.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return planToResponse(plan), nil
}

func planToResponse(plan *db_models.TravelPlan) *response_models.TravelPlanResponse {
	itinerary := map[string]interface{}{}
	if len(plan.Itinerary) > 0 {
		// Stored by us, so a decode failure just leaves the map empty.
		_ = json.Unmarshal(plan.Itinerary, &itinerary)
	}

	return &response_models.TravelPlanResponse{
		ID:            plan.ID.String(),
		Destination:   plan.Destination,
		Days:          plan.Days,
		Budget:        plan.Budget,
		Travelers:     plan.Travelers,
		Preferences:   plan.Preferences,
		StartDate:     plan.StartDate,
		EndDate:       plan.EndDate,
		Itinerary:     itinerary,
		EstimatedCost: estimatedCost(itinerary),
		CreatedAt:     plan.CreatedAt,
	}
}

func (p *PlanService) CreatePlan(ctx context.Context, userID string, req request_models.TravelRequest) (*response_models.TravelPlanResponse, error) {
	now := time.Now()

	raw, err := p.chat.Complete(ctx, llm.ChatRequest{
		System:      planSystemPrompt(now.Year()),
		User:        buildPlanPrompt(req, now),
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	itinerary, err := parseItinerary(raw, req)
	if err != nil {
		return nil, err
	}

	return p.persistPlan(ctx, userID, req, itinerary)
}

func intPtr(v int) *int { return &v }

func (p *PlanService) CreatePlanStream(ctx context.Context, userID string, req request_models.TravelRequest, emit func(response_models.ProgressEvent) error) error {
	progress := func(pct int, message string) error {
		return emit(response_models.ProgressEvent{Progress: intPtr(pct), Message: message})
	}

	if err := progress(0, "Starting travel plan generation..."); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)

	if err := progress(10, "Connecting to AI service..."); err != nil {
		return err
	}
	time.Sleep(300 * time.Millisecond)

	if err := progress(20, "Preparing the planning prompt..."); err != nil {
		return err
	}
	now := time.Now()
	prompt := buildPlanPrompt(req, now)
	time.Sleep(300 * time.Millisecond)

	if err := progress(30, fmt.Sprintf("Planning your trip to %s...", req.Destination)); err != nil {
		return err
	}

	// 40-80: advance one point per emitted update while tokens stream in.
	// Updates go out roughly every 50 generated characters, so ordering is
	// strictly increasing by construction.
	streamed := 0
	pct := 39
	var emitErr error
	raw, err := p.chat.Stream(ctx, llm.ChatRequest{
		System:      planSystemPrompt(now.Year()),
		User:        prompt,
		Temperature: 0.7,
	}, func(chunk string) {
		if emitErr != nil {
			return
		}
		before := streamed / 50
		streamed += len(chunk)
		if streamed/50 > before && pct < 80 {
			pct++
			emitErr = progress(pct, "The AI is drafting your detailed plan...")
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	if emitErr != nil {
		return emitErr
	}

	if err := progress(85, "Parsing the travel plan..."); err != nil {
		return err
	}
	itinerary, err := parseItinerary(raw, req)
	if err != nil {
		return err
	}

	if err := progress(90, "Saving the plan..."); err != nil {
		return err
	}
	saved, err := p.persistPlan(ctx, userID, req, itinerary)
	if err != nil {
		return err
	}

	return emit(response_models.ProgressEvent{
		Progress: intPtr(100),
		Message:  "Done!",
		Result:   saved,
	})
}

func (p *PlanService) ListPlans(ctx context.Context, userID string) ([]response_models.TravelPlanResponse, error) {
	plans, err := p.planRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]response_models.TravelPlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *planToResponse(&plans[i]))
	}
	return responses, nil
}

func (p *PlanService) GetPlan(ctx context.Context, planID, userID string) (*response_models.TravelPlanResponse, error) {
	plan, err := p.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return planToResponse(plan), nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID, userID string, req request_models.UpdatePlanRequest) (*response_models.TravelPlanResponse, error) {
	plan, err := p.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if req.Destination != nil {
		plan.Destination = *req.Destination
	}
	if req.Days != nil {
		plan.Days = *req.Days
	}
	if req.Budget != nil {
		plan.Budget = *req.Budget
	}
	if req.Travelers != nil {
		plan.Travelers = *req.Travelers
	}
	if req.Preferences != nil {
		plan.Preferences = *req.Preferences
	}
	if req.StartDate != nil {
		plan.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		plan.EndDate = req.EndDate
	}

	if err := p.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return planToResponse(plan), nil
}

func (p *PlanService) DeletePlan(ctx context.Context, planID, userID string) error {
	deleted, err := p.planRepo.Delete(ctx, planID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrPlanNotFound
	}
	return nil
}
