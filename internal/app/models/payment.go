package models

import (
	"time"
)

// Payment defines a completed checkout based on the 'payments' table.
// A row here is the durability point of checkout: once inserted the payment
// is captured, whatever happens to the downstream accounting. Rows are
// immutable after insert.
type Payment struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	StudentEmail   string    `json:"studentEmail" db:"student_email" example:"sam@melodica.app"`
	ClassID        int64     `json:"classId" db:"class_id" example:"7"`
	CartID         int64     `json:"cartId" db:"cart_id" example:"3"`
	Amount         float64   `json:"amount" db:"amount" example:"100"`
	TransactionRef string    `json:"transactionRef" db:"transaction_ref" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
	PaidAt         time.Time `json:"paidAt" db:"paid_at"`

	// Class metadata joined for history listings, not stored on the row.
	ClassName *string `json:"className,omitempty"`
}
