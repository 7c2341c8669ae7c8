package models

import "time"

// Issue defines the issue ticket model based on the 'issues' table
type Issue struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"` // 10..500 characters
	Category    IssueCategory `json:"category" db:"category"`
	Status      IssueStatus   `json:"status" db:"status"`
	RaisedBy    int64         `json:"raisedBy" db:"raised_by"` // Student ID
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"` // Relation, no db tag
}

// IssueComment defines the comment model based on the 'issue_comments' table
type IssueComment struct {
	ID          int64     `json:"id" db:"id"`
	IssueID     int64     `json:"issueId" db:"issue_id"`
	CommentedBy int64     `json:"commentedBy" db:"commented_by"` // User ID
	CommentText string    `json:"commentText" db:"comment_text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}
