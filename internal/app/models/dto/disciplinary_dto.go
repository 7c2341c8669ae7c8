package dto

// CreateCaseRequest represents a new disciplinary case
type CreateCaseRequest struct {
	StudentID  int64  `json:"student_id" binding:"required,min=1"`
	Reason     string `json:"reason" binding:"required"`
	FineAmount int64  `json:"fine_amount"`
}

// UpdateCaseRequest represents a partial case update
type UpdateCaseRequest struct {
	Reason     *string `json:"reason"`
	FineAmount *int64  `json:"fine_amount"`
	Status     *string `json:"status"`
}

// CaseFilter narrows disciplinary case listing
type CaseFilter struct {
	Status    string
	StudentID int64
	Page      int
	Limit     int
}
