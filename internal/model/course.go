package model

import "time"

// Course represents a scheduled course taught by an instructor.
// The pair (name, instructor_id) is unique among non-deleted courses.
type Course struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	InstructorID int       `json:"instructor_id"`
	Schedule     time.Time `json:"schedule"`
	IsDeleted    bool      `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relations, loaded only on detail reads.
	Instructor  *Instructor  `json:"instructor,omitempty"`
	Enrollments []Enrollment `json:"enrollments,omitempty"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name         string    `json:"name" binding:"required,min=2,max=150"`
	Description  string    `json:"description" binding:"omitempty,max=2000"`
	InstructorID int       `json:"instructor_id" binding:"required,min=1"`
	Schedule     time.Time `json:"schedule" binding:"required"`
}

// UpdateCourseRequest is a partial update; nil fields are left untouched.
type UpdateCourseRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=2,max=150"`
	Description  *string    `json:"description" binding:"omitempty,max=2000"`
	InstructorID *int       `json:"instructor_id" binding:"omitempty,min=1"`
	Schedule     *time.Time `json:"schedule"`
}
