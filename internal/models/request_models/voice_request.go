package request_models

type VoiceBase64Request struct {
	AudioBase64 string `json:"audio_base64" binding:"required"`
	Format      string `json:"format"`
}
