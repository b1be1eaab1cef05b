package request_models

type ParseRequest struct {
	Text string `json:"text" binding:"required"`
}
