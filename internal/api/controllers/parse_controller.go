package controllers

import (
	"net/http"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ParseController struct {
	parseService services.ParseServiceInterface
}

func NewParseController(parseService services.ParseServiceInterface) *ParseController {
	return &ParseController{
		parseService: parseService,
	}
}

// ParseVoiceText extracts structured plan fields from transcribed speech.
func (p *ParseController) ParseVoiceText(c *gin.Context) {
	var req request_models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	info, err := p.parseService.ParseTravelText(c.Request.Context(), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Text parsed successfully")
}
