package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TravelController struct {
	planService services.PlanServiceInterface
}

func NewTravelController(planService services.PlanServiceInterface) *TravelController {
	return &TravelController{
		planService: planService,
	}
}

// CreatePlan generates an itinerary and persists it (no progress reporting).
func (t *TravelController) CreatePlan(c *gin.Context) {
	var req request_models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	plan, err := t.planService.CreatePlan(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

func streamRequestFromQuery(c *gin.Context) (request_models.TravelRequest, error) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days < 1 {
		return request_models.TravelRequest{}, fmt.Errorf("days must be a positive integer")
	}
	budget, err := strconv.ParseFloat(c.Query("budget"), 64)
	if err != nil {
		return request_models.TravelRequest{}, fmt.Errorf("budget must be a number")
	}
	travelers, err := strconv.Atoi(c.Query("travelers"))
	if err != nil || travelers < 1 {
		return request_models.TravelRequest{}, fmt.Errorf("travelers must be a positive integer")
	}
	destination := c.Query("destination")
	if destination == "" {
		return request_models.TravelRequest{}, fmt.Errorf("destination is required")
	}

	req := request_models.TravelRequest{
		Destination: destination,
		Days:        days,
		Budget:      budget,
		Travelers:   travelers,
		Preferences: c.Query("preferences"),
	}
	if start := c.Query("start_date"); start != "" {
		req.StartDate = &start
	}
	return req, nil
}

// CreatePlanStream is the SSE variant: progress frames at fixed milestones,
// then a terminal frame carrying the saved plan, or an error frame on failure.
func (t *TravelController) CreatePlanStream(c *gin.Context) {
	req, err := streamRequestFromQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetString("user_id")

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	emit := func(event response_models.ProgressEvent) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	if err := t.planService.CreatePlanStream(c.Request.Context(), userID, req, emit); err != nil {
		// Failures surface as a terminal error frame, not an HTTP status.
		_ = emit(response_models.ProgressEvent{
			Error:   err.Error(),
			Message: fmt.Sprintf("generation failed: %v", err),
		})
	}
}

func (t *TravelController) GetPlans(c *gin.Context) {
	userID := c.GetString("user_id")

	plans, err := t.planService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"plans": plans}, "Plans fetched successfully")
}

func (t *TravelController) GetPlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := t.planService.GetPlan(c.Request.Context(), planID, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

func (t *TravelController) UpdatePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := t.planService.UpdatePlan(c.Request.Context(), planID, c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

func (t *TravelController) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := t.planService.DeletePlan(c.Request.Context(), planID, c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}
