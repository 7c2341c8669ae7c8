package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
	RoleStaff   RoleType = "staff"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// UserStatus defines the account status
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// LeaveStatus defines the lifecycle of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// CaseStatus defines the lifecycle of a disciplinary case
type CaseStatus string

const (
	CaseOpen   CaseStatus = "open"
	CaseClosed CaseStatus = "closed"
)

// IssueStatus defines the lifecycle of an issue ticket
type IssueStatus string

const (
	IssuePending  IssueStatus = "pending"
	IssueResolved IssueStatus = "resolved"
)

// IssueCategory classifies an issue ticket
type IssueCategory string

const (
	CategoryDrinkingWater IssueCategory = "drinking-water"
	CategoryPlumbing      IssueCategory = "plumbing"
	CategoryFurniture     IssueCategory = "furniture"
	CategoryElectricity   IssueCategory = "electricity"
	CategoryOther         IssueCategory = "other"
)

// ValidIssueCategory reports whether the category is one of the known ones.
func ValidIssueCategory(c IssueCategory) bool {
	switch c {
	case CategoryDrinkingWater, CategoryPlumbing, CategoryFurniture, CategoryElectricity, CategoryOther:
		return true
	}
	return false
}

// PaymentStatus defines the outcome of a recorded payment
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)
