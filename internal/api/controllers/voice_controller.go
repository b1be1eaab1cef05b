package controllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"path/filepath"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"

	"github.com/gin-gonic/gin"
)

type VoiceController struct {
	voiceService services.VoiceServiceInterface
}

func NewVoiceController(voiceService services.VoiceServiceInterface) *VoiceController {
	return &VoiceController{
		voiceService: voiceService,
	}
}

// Recognize accepts a multipart audio upload and returns the transcript.
func (v *VoiceController) Recognize(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Audio file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read audio file")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read audio file")
		return
	}

	format := filepath.Ext(fileHeader.Filename)

	result, err := v.voiceService.Recognize(c.Request.Context(), audio, format)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Audio recognized successfully")
}

// RecognizeBase64 serves web clients that send audio inline.
func (v *VoiceController) RecognizeBase64(c *gin.Context) {
	var req request_models.VoiceBase64Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "audio_base64 is not valid base64")
		return
	}

	format := req.Format
	if format == "" {
		format = "wav"
	}

	result, err := v.voiceService.Recognize(c.Request.Context(), audio, format)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Audio recognized successfully")
}
