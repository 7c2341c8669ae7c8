package dto

import "github.com/devansh/hostelhub/internal/app/models"

// EnrollStudentRequest carries the input of the enrollment transaction:
// one atomic user + room allocation + student profile creation.
type EnrollStudentRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	SID              string `json:"sid"`
	PermanentAddress string `json:"permanent_address"`
	GuardianName     string `json:"guardian_name"`
	GuardianContact  string `json:"guardian_contact"`
	Branch           string `json:"branch"`
	RoomNumber       string `json:"room_number"`
	Block            string `json:"block"`
}

// EnrollStudentResponse is the composed result of a successful enrollment
type EnrollStudentResponse struct {
	User    *models.User    `json:"user"`
	Student *models.Student `json:"student"`
}

// UpdateStudentRequest carries a profile update. Pointers distinguish
// "not provided" from zero values. Block/room_number select the target
// room; the persisted denormalized copies are always re-derived from the
// allocated room, never from these fields directly.
type UpdateStudentRequest struct {
	PermanentAddress *string `json:"permanent_address"`
	GuardianName     *string `json:"guardian_name"`
	GuardianContact  *string `json:"guardian_contact"`
	Branch           *string `json:"branch"`
	RoomNumber       *string `json:"room_number"`
	Block            *string `json:"block"`
}

// HasChanges reports whether any field was provided
func (r *UpdateStudentRequest) HasChanges() bool {
	return r.PermanentAddress != nil || r.GuardianName != nil || r.GuardianContact != nil ||
		r.Branch != nil || r.RoomNumber != nil || r.Block != nil
}

// StudentFilter narrows student listing
type StudentFilter struct {
	Block  string
	Branch string
	Search string // Matches full name, email or SID
	Page   int
	Limit  int
}
