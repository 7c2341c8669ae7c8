package dto

// CreateRoomRequest represents the admin room creation request
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Block      string `json:"block" binding:"required"`
	Floor      *int   `json:"floor" binding:"required"`
	Capacity   int    `json:"capacity"`
	YearlyRent int64  `json:"yearly_rent"`
}

// UpdateRoomRequest represents a partial room update
type UpdateRoomRequest struct {
	Floor      *int   `json:"floor"`
	Capacity   *int   `json:"capacity"`
	YearlyRent *int64 `json:"yearly_rent"`
}

// RoomFilter narrows room listing
type RoomFilter struct {
	Block    string
	Floor    *int
	IsActive *bool
}
