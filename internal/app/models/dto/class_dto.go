package dto

// CreateClassRequest represents a class creation request. The instructor
// email is taken from the authenticated token, never from the body.
type CreateClassRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=200" example:"Beginner Violin"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	InstructorName string  `json:"instructorName" binding:"required" example:"Ada Martin"`
	Price          float64 `json:"price" binding:"required,gt=0" example:"100"`
	TotalSeats     int     `json:"totalSeats" binding:"required,gt=0" example:"20"`
}

// UpdateClassStatusRequest represents an admin approval decision
type UpdateClassStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED DENIED" example:"APPROVED"`
}

// UpdateFeedbackRequest represents admin feedback on a class
type UpdateFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required" example:"Please add a syllabus."`
}
