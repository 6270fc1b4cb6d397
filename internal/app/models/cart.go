package models

import (
	"time"
)

// CartEntry defines a provisional seat hold based on the 'carts' table.
// Creating an entry decrements the class's available seats; removing it
// puts the seat back, and a successful checkout converts the hold into an
// enrollment instead.
type CartEntry struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	StudentEmail string    `json:"studentEmail" db:"student_email" example:"sam@melodica.app"`
	ClassID      int64     `json:"classId" db:"class_id" example:"7"`
	Price        float64   `json:"price" db:"price" example:"100"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Class metadata joined for cart listings, not stored on the row.
	ClassName *string `json:"className,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
}
