package models

import "time"

// Student defines the student profile model based on the 'students' table.
// BlockCode and RoomNumber are denormalized copies of the referenced room's
// identity; they are re-derived from room_id on every assignment change and
// never taken from caller input.
type Student struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"userId" db:"user_id"`
	RoomID           int64      `json:"roomId" db:"room_id"`
	SID              string     `json:"sid" db:"sid" example:"20231042"` // 8 digit student identifier
	PermanentAddress string     `json:"permanentAddress" db:"permanent_address"`
	GuardianName     string     `json:"guardianName,omitempty" db:"guardian_name"`
	GuardianContact  string     `json:"guardianContact" db:"guardian_contact"` // 10 digits
	Branch           string     `json:"branch" db:"branch"`
	BlockCode        string     `json:"block" db:"block"`            // Denormalized from rooms.block
	RoomNumber       string     `json:"roomNumber" db:"room_number"` // Denormalized from rooms.room_number
	LeavingDate      *time.Time `json:"leavingDate,omitempty" db:"leaving_date"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
	Room *Room `json:"room,omitempty"` // Relation, no db tag
}

// StudentHistory records a snapshot of a profile before an admin edit,
// based on the 'student_history' table.
type StudentHistory struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	UpdatedBy int64     `json:"updatedBy" db:"updated_by"`
	OldData   []byte    `json:"oldData" db:"old_data"` // JSON snapshot of the prior profile
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
