package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountInactive    = errors.New("account is inactive")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student profile not found")
	ErrSIDAlreadyExists     = errors.New("student ID already exists")
	ErrProfileAlreadyExists = errors.New("student profile already exists for this user")
)

// Room errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room already exists in this block")
	ErrRoomFull          = errors.New("room is already at full capacity")
	ErrRoomInactive      = errors.New("room is not active")
)

// Hostel errors
var (
	ErrHostelNotFound      = errors.New("hostel not found")
	ErrHostelAlreadyExists = errors.New("hostel with this code already exists")
)

// Leave request errors
var (
	ErrLeaveNotFound = errors.New("leave request not found")
	ErrLeaveOverlap  = errors.New("a leave request already exists for this period")
)

// Issue and comment errors
var (
	ErrIssueNotFound   = errors.New("issue not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Remaining aggregate errors
var (
	ErrCaseNotFound         = errors.New("disciplinary case not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// ValidationError carries the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a field-scoped validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewNotFoundError creates a resource not found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// Is returns whether target or any of errList matches err
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
