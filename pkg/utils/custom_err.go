package utils

import "errors"

var (
	ErrInvalidInput              = errors.New("invalid input")
	ErrDatabaseError             = errors.New("database error")
	ErrPlanNotFound              = errors.New("travel plan not found")
	ErrAddressNotFound           = errors.New("address not found")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrEmailConfirmationRequired = errors.New("email confirmation required")
	ErrUpstreamTimeout           = errors.New("upstream service timeout")
	ErrUpstreamFailure           = errors.New("upstream service failure")
	ErrModelResponseInvalid      = errors.New("model response could not be parsed")
	ErrConfigMissing             = errors.New("required configuration missing")
	ErrSpeechNotConfigured       = errors.New("speech recognition not configured")
)
