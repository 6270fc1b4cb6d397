package models

import (
	"time"
)

// Class defines a class offering based on the 'classes' table.
// AvailableSeats is the authoritative count of seats not currently held by
// any cart entry or payment; it is only ever mutated through conditional
// updates in the repositories.
type Class struct {
	ID              int64       `json:"id" db:"id" example:"1"`
	Name            string      `json:"name" db:"name" example:"Beginner Violin"`
	ImageURL        *string     `json:"imageUrl,omitempty" db:"image_url"`
	InstructorName  string      `json:"instructorName" db:"instructor_name" example:"Ada Martin"`
	InstructorEmail string      `json:"instructorEmail" db:"instructor_email" example:"ada@melodica.app"`
	Price           float64     `json:"price" db:"price" example:"100"`
	TotalSeats      int         `json:"totalSeats" db:"total_seats" example:"20"`
	AvailableSeats  int         `json:"availableSeats" db:"available_seats" example:"12"`
	EnrolledCount   int         `json:"enrolledCount" db:"enrolled_count" example:"8"`
	Status          ClassStatus `json:"status" db:"status" example:"APPROVED"`
	Feedback        *string     `json:"feedback,omitempty" db:"feedback"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
