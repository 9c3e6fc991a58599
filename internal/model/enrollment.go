package model

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// Enrollment links a student to a course. Cancellation flips the status and
// stamps CancelledAt; the row is never removed, and the (student_id,
// course_id) pair stays claimed even after cancellation.
type Enrollment struct {
	ID          int              `json:"id"`
	StudentID   int              `json:"student_id"`
	CourseID    int              `json:"course_id"`
	Status      EnrollmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	CancelledAt *time.Time       `json:"cancelled_at,omitempty"`

	// Relations, loaded per read path: course on by-student reads,
	// student on by-course reads.
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}

// CreateEnrollmentRequest enrolls one student into one or more courses.
type CreateEnrollmentRequest struct {
	StudentID int   `json:"student_id" binding:"required,min=1"`
	CourseIDs []int `json:"course_ids" binding:"required,min=1,dive,min=1"`
}
