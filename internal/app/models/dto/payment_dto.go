package dto

// CreatePaymentRequest represents a new payment ledger entry
type CreatePaymentRequest struct {
	UserID        int64  `json:"user_id" binding:"required,min=1"`
	Amount        int64  `json:"amount" binding:"required,min=1"`
	Status        string `json:"status" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// UpdatePaymentRequest represents a partial payment update
type UpdatePaymentRequest struct {
	Amount        *int64  `json:"amount"`
	Status        *string `json:"status"`
	TransactionID *string `json:"transaction_id"`
}

// PaymentFilter narrows payment listing
type PaymentFilter struct {
	Status    string
	UserID    int64
	StartDate string // "YYYY-MM-DD", inclusive
	EndDate   string // "YYYY-MM-DD", inclusive
	Page      int
	Limit     int
}

// PaymentStats summarizes the ledger over an optional date range
type PaymentStats struct {
	TotalPayments      int64 `json:"totalPayments"`
	SuccessfulPayments int64 `json:"successfulPayments"`
	FailedPayments     int64 `json:"failedPayments"`
	TotalAmount        int64 `json:"totalAmount"` // Sum of successful amounts
}
