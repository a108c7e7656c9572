package errors

import "fmt"

var (
	ErrAuthFailed         = fmt.Errorf("incorrect access key")
	ErrUnknownDisease     = fmt.Errorf("unknown disease")
	ErrInvalidImage       = fmt.Errorf("invalid or unsupported image")
	ErrBackendUnavailable = fmt.Errorf("diagnostic backend unavailable")
	ErrLogSink            = fmt.Errorf("feedback log sink failure")
	ErrNotificationSink   = fmt.Errorf("feedback notification sink failure")
	ErrAssetMissing       = fmt.Errorf("asset missing")
	ErrSessionNotFound    = fmt.Errorf("session not found")
	ErrInvalidFeedback    = fmt.Errorf("invalid feedback submission")
	ErrTokenGeneration    = fmt.Errorf("unable to generate session token")
)
