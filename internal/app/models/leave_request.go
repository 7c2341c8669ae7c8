package models

import "time"

// LeaveRequest defines the leave request model based on the 'leave_requests' table
type LeaveRequest struct {
	ID          int64       `json:"id" db:"id"`
	StudentID   int64       `json:"studentId" db:"student_id"`
	FromDate    time.Time   `json:"fromDate" db:"from_date"`
	ToDate      time.Time   `json:"toDate" db:"to_date"`
	Destination string      `json:"destination" db:"destination"`
	Reason      string      `json:"reason" db:"reason"`
	Status      LeaveStatus `json:"status" db:"status"`
	ApprovedBy  *int64      `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"` // Relation, no db tag
}
