package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FullName  string     `json:"fullName" db:"full_name" example:"Rohan Sharma"`           // User's full name
	Email     string     `json:"email" db:"email" example:"rohan@hostel.edu"`              // User's email address (unique)
	Phone     string     `json:"phone" db:"phone" example:"9876543210"`                    // User's 10 digit phone number (unique)
	Password  string     `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role      RoleType   `json:"role" db:"role" example:"student"`                         // User's role (student, admin or staff)
	Status    UserStatus `json:"status" db:"status" example:"active"`                      // Whether the account is active or inactive
	CreatedAt time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated

	Student *Student `json:"student,omitempty"` // Relation, no db tag
}
