package dto

import "time"

// APIResponse is the envelope for read endpoints
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in an APIResponse stamped with the current time
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data, Timestamp: time.Now()}
}

// MessageResponse is a bare message, used by delete actions and sign-in failures
type MessageResponse struct {
	Message string `json:"message" example:"Deleted Course."`
}

// FailureResponse is the seed endpoint's error body
type FailureResponse struct {
	Error string `json:"error" example:"relation \"users\" does not exist"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
