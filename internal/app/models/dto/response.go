package dto

import "time"

// APIResponse represents a standard success envelope
type APIResponse struct {
	Success    bool            `json:"success" example:"true"`
	Message    string          `json:"message,omitempty"`
	Data       interface{}     `json:"data,omitempty"`
	Count      *int            `json:"count,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"page"`
	TotalPages  int   `json:"pages"`
	PageSize    int   `json:"limit"`
	TotalItems  int64 `json:"total"`
}

// NewSuccessResponse creates a success envelope with data and message
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewListResponse creates a success envelope for a paginated list
func NewListResponse(data interface{}, pagination PaginationInfo, message string) APIResponse {
	return APIResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	}
}
