package handler

import (
	"errors"
	"net/http"

	"github.com/edusync/sis-backend/internal/response"
	"github.com/edusync/sis-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// failFromService maps a service error onto the HTTP status and error code
// it should surface as. Unknown errors become a 500.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrInstructorNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrEnrollmentNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
	case errors.Is(err, service.ErrDuplicateCourse):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateCourse)
	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
	case errors.Is(err, service.ErrInstructorHasCourses):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
