package services

import (
	"context"
	"fmt"
	"strings"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

var supportedAudioFormats = map[string]bool{
	"wav":  true,
	"mp3":  true,
	"pcm":  true,
	"opus": true,
	"amr":  true,
	"ogg":  true,
}

// VoiceServiceInterface forwards audio to the cloud speech-recognition
// service. Recognition is still a stub pending the vendor SDK; requests are
// validated and credentials checked so the endpoint fails honestly.
type VoiceServiceInterface interface {
	Recognize(ctx context.Context, audio []byte, format string) (*response_models.VoiceRecognitionResponse, error)
}

type VoiceService struct {
	appKey          string
	accessKeyID     string
	accessKeySecret string
}

func NewVoiceService(appKey, accessKeyID, accessKeySecret string) VoiceServiceInterface {
	return &VoiceService{
		appKey:          appKey,
		accessKeyID:     accessKeyID,
		accessKeySecret: accessKeySecret,
	}
}

func (v *VoiceService) configured() bool {
	return v.appKey != "" && v.accessKeyID != "" && v.accessKeySecret != ""
}

func (v *VoiceService) Recognize(ctx context.Context, audio []byte, format string) (*response_models.VoiceRecognitionResponse, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !supportedAudioFormats[format] {
		return nil, fmt.Errorf("%w: unsupported audio format %q", utils.ErrInvalidInput, format)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio payload", utils.ErrInvalidInput)
	}

	if !v.configured() {
		return nil, fmt.Errorf("%w: speech credentials are not set", utils.ErrSpeechNotConfigured)
	}

	// TODO: call the cloud one-sentence recognition API once the NLS token
	// exchange is implemented.
	return nil, fmt.Errorf("%w: recognition pending SDK integration", utils.ErrSpeechNotConfigured)
}
