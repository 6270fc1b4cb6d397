package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
	RoleAdmin      RoleType = "ADMIN"
)

// ClassStatus represents the approval state of a class offering
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "PENDING"
	ClassStatusApproved ClassStatus = "APPROVED"
	ClassStatusDenied   ClassStatus = "DENIED"
)

// ValidRole reports whether the given string is a known role.
func ValidRole(r string) bool {
	switch RoleType(r) {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// ValidClassDecision reports whether the given string is a status an admin
// can move a class to. PENDING is the initial state only, never a decision.
func ValidClassDecision(s string) bool {
	switch ClassStatus(s) {
	case ClassStatusApproved, ClassStatusDenied:
		return true
	}
	return false
}
