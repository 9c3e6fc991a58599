package service

import "errors"

// Every expected service failure is one of these sentinels. Handlers map
// them onto HTTP status codes; anything else surfaces as a server fault.
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrEmailTaken           = errors.New("email already in use")
	ErrDuplicateCourse      = errors.New("course with this name already exists for this instructor")
	ErrAlreadyEnrolled      = errors.New("student is already enrolled in this course")
	ErrInstructorHasCourses = errors.New("instructor still has courses assigned")
)
