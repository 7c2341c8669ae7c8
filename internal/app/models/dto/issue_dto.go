package dto

// CreateIssueRequest represents a new issue ticket
type CreateIssueRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required,min=10,max=500"`
	Category    string `json:"category"`
}

// UpdateIssueRequest represents an edit of a pending issue by its owner
type UpdateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// UpdateIssueStatusRequest carries the pending/resolved transition
type UpdateIssueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// IssueFilter narrows issue listing
type IssueFilter struct {
	Status   string
	Category string
	RaisedBy int64 // Student ID; set for student callers
	Page     int
	Limit    int
}

// CreateCommentRequest represents a new comment on an issue
type CreateCommentRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}

// UpdateCommentRequest represents a comment edit
type UpdateCommentRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}
