package domain

import "time"

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeDeposit    TransactionType = "deposit"
)

// TransactionStatus represents the lifecycle state of a transaction as the
// directory sees it.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
	TransactionStatusDisputed  TransactionStatus = "disputed"
)

// Transaction is owned by the Transaction Directory. The engine only reads
// it and writes its status through reconciliation.
type Transaction struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	UserName      string            `json:"user_name"`
	Amount        int64             `json:"amount"` // smallest currency unit
	Currency      string            `json:"currency"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	MerchantName  string            `json:"merchant_name"`
	CardLast4     string            `json:"card_last4"`
	AccountNumber string            `json:"account_number"`
	Timestamp     time.Time         `json:"timestamp"`
	Description   string            `json:"description"`
}

// TransactionStatusFor maps a dispute status onto the transaction status it
// implies. The second return is false for statuses that imply no write
// (draft). Total and deterministic; callers always re-apply the result even
// when unchanged.
func TransactionStatusFor(status DisputeStatus) (TransactionStatus, bool) {
	switch status {
	case DisputeStatusCreated, DisputeStatusUnderReview:
		return TransactionStatusDisputed, true
	case DisputeStatusApproved, DisputeStatusSettled:
		return TransactionStatusRefunded, true
	case DisputeStatusRejected:
		return TransactionStatusCompleted, true
	default:
		return "", false
	}
}
