package dto

// CreateLeaveRequest represents a student's leave application.
// Dates arrive in "YYYY-MM-DD" form.
type CreateLeaveRequest struct {
	FromDate    string `json:"from_date" binding:"required"`
	ToDate      string `json:"to_date" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// UpdateLeaveStatusRequest carries the approve/reject decision
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeaveFilter narrows leave request listing
type LeaveFilter struct {
	Status    string
	StudentID int64
	Page      int
	Limit     int
}
