package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the account
	Email     string    `json:"email" db:"email" example:"ada@melodica.app"`              // Account email address (unique)
	Name      string    `json:"name" db:"name" example:"Ada Martin"`                      // Display name
	PhotoURL  *string   `json:"photoUrl,omitempty" db:"photo_url"`                        // Avatar URL from the identity provider (nullable)
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`                         // STUDENT, INSTRUCTOR or ADMIN
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
}
