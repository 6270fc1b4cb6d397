package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
// Warning carries non-fatal outcomes (e.g. enrollment accounting that could
// not complete after a payment was already recorded).
type APIResponse struct {
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Warning   string       `json:"warning,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse wraps data in the standard success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse wraps data and a human-readable message in the envelope
func NewMessageResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}
