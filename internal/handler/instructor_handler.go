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

// InstructorHandler handles instructor CRUD endpoints.
type InstructorHandler struct {
	instructorService *service.InstructorService
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(instructorService *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// List godoc
// GET /api/instructors
// Lists all instructors with their courses.
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.instructorService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"instructors": instructors})
}

// Get godoc
// GET /api/instructors/:id
func (h *InstructorHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	instructor, err := h.instructorService.Get(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"instructor": instructor})
}

// Create godoc
// POST /api/instructors
func (h *InstructorHandler) Create(c *gin.Context) {
	var req model.CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor, err := h.instructorService.Create(c.Request.Context(), req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"instructor": instructor})
}

// Update godoc
// PUT /api/instructors/:id
func (h *InstructorHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	instructor, err := h.instructorService.Update(c.Request.Context(), id, req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"instructor": instructor})
}

// Delete godoc
// DELETE /api/instructors/:id
// Physically removes the instructor. Fails with a dependency conflict while
// courses still reference them.
func (h *InstructorHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.instructorService.Delete(c.Request.Context(), id); err != nil {
		failFromService(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
