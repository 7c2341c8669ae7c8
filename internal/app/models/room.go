package models

import "time"

// Room defines the room model based on the 'rooms' table.
// (block, room_number) is unique and 0 <= occupancy <= capacity is enforced
// both by a table CHECK and by the conditional allocate/release updates.
type Room struct {
	ID         int64     `json:"id" db:"id"`
	RoomNumber string    `json:"roomNumber" db:"room_number" example:"203"`
	BlockCode  string    `json:"block" db:"block" example:"a"` // Stored lowercased
	Floor      int       `json:"floor" db:"floor"`
	Capacity   int       `json:"capacity" db:"capacity"`   // >= 1
	Occupancy  int       `json:"occupancy" db:"occupancy"` // Current resident count
	IsActive   bool      `json:"isActive" db:"is_active"`
	YearlyRent int64     `json:"yearlyRent" db:"yearly_rent"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
