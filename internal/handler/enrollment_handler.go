package handler

import (
	"net/http"
	"strconv"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/response"
	"github.com/edusync/sis-backend/internal/service"
	"github.com/edusync/sis-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Create godoc
// POST /api/enrollments
// Enrolls one student into one or more courses in a single batch.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req model.CreateEnrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollments, err := h.enrollmentService.CreateMany(c.Request.Context(), req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollments": enrollments})
}

// ListByStudent godoc
// GET /api/enrollments/student/:studentId
func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("studentId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	enrollments, err := h.enrollmentService.FindByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// ListByCourse godoc
// GET /api/enrollments/course/:courseId
func (h *EnrollmentHandler) ListByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	enrollments, err := h.enrollmentService.FindByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// Cancel godoc
// DELETE /api/enrollments/:id
// Flips the enrollment status to cancelled; the row is kept.
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.enrollmentService.Cancel(c.Request.Context(), id); err != nil {
		failFromService(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
