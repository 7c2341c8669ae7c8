package models

import "time"

// Hostel defines the hostel model based on the 'hostels' table
type Hostel struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Code           string    `json:"code" db:"code" example:"HMS_MAIN"` // Stored uppercased, unique
	Blocks         []string  `json:"blocks" db:"blocks"`                // Lowercased block codes
	FloorsPerBlock int       `json:"floorsPerBlock" db:"floors_per_block"`
	RoomsPerFloor  int       `json:"roomsPerFloor" db:"rooms_per_floor"`
	TotalRooms     int       `json:"totalRooms" db:"total_rooms"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
