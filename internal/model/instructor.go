package model

import "time"

// Instructor represents a course instructor. Unlike students, instructors
// have no soft-delete flag: deletion removes the row.
type Instructor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Courses taught by this instructor, loaded on list/detail reads.
	Courses []Course `json:"courses"`
}

// CreateInstructorRequest is the payload for registering a new instructor.
type CreateInstructorRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,phone"`
}

// UpdateInstructorRequest is a partial update; nil fields are left untouched.
type UpdateInstructorRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,phone"`
}
