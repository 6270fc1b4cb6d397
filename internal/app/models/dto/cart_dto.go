package dto

// AddToCartRequest represents a seat reservation request. The student email
// is taken from the authenticated token.
type AddToCartRequest struct {
	ClassID int64   `json:"classId" binding:"required,gt=0" example:"7"`
	Price   float64 `json:"price" binding:"required,gt=0" example:"100"`
}
