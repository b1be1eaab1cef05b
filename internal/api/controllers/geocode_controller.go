package controllers

import (
	"net/http"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GeocodeController struct {
	geocodeService services.GeocodeServiceInterface
}

func NewGeocodeController(geocodeService services.GeocodeServiceInterface) *GeocodeController {
	return &GeocodeController{
		geocodeService: geocodeService,
	}
}

func (g *GeocodeController) Geocode(c *gin.Context) {
	var req request_models.GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Address is required")
		return
	}

	result, err := g.geocodeService.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Address resolved successfully")
}

func (g *GeocodeController) DrivingRoute(c *gin.Context) {
	var req request_models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Origin and destination coordinates are required")
		return
	}

	route, err := g.geocodeService.DrivingRoute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route planned successfully")
}
