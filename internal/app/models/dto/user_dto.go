package dto

// CreateUserRequest represents a registration request. Registration happens
// on first social login, so a duplicate email is a no-op success.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email" example:"sam@melodica.app"`
	Name     string  `json:"name" binding:"required,min=2,max=100" example:"Sam Rivera"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// RoleCheckResponse reports the outcome of a role lookup for an account
type RoleCheckResponse struct {
	Admin      bool `json:"admin,omitempty"`
	Instructor bool `json:"instructor,omitempty"`
}
