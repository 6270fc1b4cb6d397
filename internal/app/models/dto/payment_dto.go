package dto

import "github.com/dkaya/melodica/internal/app/models"

// CreateIntentRequest represents a payment-intent request. The amount is
// caller-supplied and deliberately not validated against the class price,
// mirroring the upstream checkout flow.
type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0" example:"100"`
}

// CreateIntentResponse carries the provider client secret
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CompleteCheckoutRequest represents a checkout completion after the
// provider confirmed the payment. The student email is taken from the token.
type CompleteCheckoutRequest struct {
	ClassID        int64   `json:"classId" binding:"required,gt=0" example:"7"`
	CartID         int64   `json:"cartId" binding:"required,gt=0" example:"3"`
	Amount         float64 `json:"amount" binding:"required,gt=0" example:"100"`
	TransactionRef string  `json:"transactionRef" binding:"required" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
}

// CheckoutResponse reports the outcome of a completed checkout. CartDeleted
// and Enrolled are best-effort accounting flags; the payment itself is
// durable as soon as it appears here.
type CheckoutResponse struct {
	Payment     *models.Payment `json:"payment"`
	CartDeleted bool            `json:"cartDeleted"`
	Enrolled    bool            `json:"enrolled"`
}
