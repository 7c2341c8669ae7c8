package dto

// CreateAnnouncementRequest represents a new announcement
type CreateAnnouncementRequest struct {
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Category  string `json:"category" binding:"required"`
	NoticeURL string `json:"notice_url"`
}

// UpdateAnnouncementRequest represents a partial announcement update
type UpdateAnnouncementRequest struct {
	Title     *string `json:"title"`
	Message   *string `json:"message"`
	Category  *string `json:"category"`
	NoticeURL *string `json:"notice_url"`
}

// AnnouncementFilter narrows announcement listing
type AnnouncementFilter struct {
	Category string
	Page     int
	Limit    int
}
