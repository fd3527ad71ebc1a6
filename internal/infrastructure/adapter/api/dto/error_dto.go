package dto

import (
	domainerr "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// NewErrorResponse builds the client-safe view of err
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error: domainerr.PublicMessage(err),
		Code:  domainerr.ErrorCode(err),
	}
}

// MessageResponse carries a one-line confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// HeartbeatResponse reports liveness of the process and its database
type HeartbeatResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
