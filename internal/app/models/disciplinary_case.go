package models

import "time"

// DisciplinaryCase defines the disciplinary case model based on the
// 'disciplinary_cases' table
type DisciplinaryCase struct {
	ID         int64      `json:"id" db:"id"`
	StudentID  int64      `json:"studentId" db:"student_id"`
	Reason     string     `json:"reason" db:"reason"`
	FineAmount int64      `json:"fineAmount" db:"fine_amount"`
	Status     CaseStatus `json:"status" db:"status"`
	DecidedBy  int64      `json:"decidedBy" db:"decided_by"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"` // Relation, no db tag
}
