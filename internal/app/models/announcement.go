package models

import "time"

// Announcement defines the announcement model based on the 'announcements' table
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Category  string    `json:"category" db:"category"` // Stored lowercased
	NoticeURL string    `json:"noticeUrl,omitempty" db:"notice_url"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}
