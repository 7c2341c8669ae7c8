package dto

// CreateHostelRequest represents the admin hostel creation request
type CreateHostelRequest struct {
	Name           string   `json:"name" binding:"required"`
	Code           string   `json:"code" binding:"required"`
	Blocks         []string `json:"blocks" binding:"required,min=1"`
	FloorsPerBlock int      `json:"floors_per_block" binding:"required,min=1"`
	RoomsPerFloor  int      `json:"rooms_per_floor" binding:"required,min=1"`
	TotalRooms     int      `json:"total_rooms" binding:"required,min=1"`
}

// UpdateHostelRequest represents a partial hostel update
type UpdateHostelRequest struct {
	Name           *string  `json:"name"`
	Blocks         []string `json:"blocks"`
	FloorsPerBlock *int     `json:"floors_per_block"`
	RoomsPerFloor  *int     `json:"rooms_per_floor"`
}
