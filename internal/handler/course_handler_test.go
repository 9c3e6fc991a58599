package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/edusync/sis-backend/internal/mocks"
	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
	"github.com/edusync/sis-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCourseRoutes(courseRepo *mocks.CourseRepository, instructorRepo *mocks.InstructorRepository) *gin.Engine {
	h := NewCourseHandler(service.NewCourseService(courseRepo, instructorRepo))
	router := newTestRouter()
	router.GET("/api/courses", h.List)
	router.GET("/api/courses/:id", h.Get)
	router.POST("/api/courses", h.Create)
	router.PUT("/api/courses/:id", h.Update)
	router.DELETE("/api/courses/:id", h.Delete)
	return router
}

func TestCourseCreateEndpointDuplicatePair(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	instructorRepo.On("GetByID", mock.Anything, 5).Return(&model.Instructor{ID: 5}, nil)
	courseRepo.On("GetActiveByNameAndInstructor", mock.Anything, "CS101", 5).
		Return(&model.Course{ID: 7, Name: "CS101", InstructorID: 5}, nil)

	router := setupCourseRoutes(courseRepo, instructorRepo)
	w := perform(router, http.MethodPost, "/api/courses", gin.H{
		"name":          "CS101",
		"instructor_id": 5,
		"schedule":      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "DUPLICATE_COURSE", env.Error.Code)
}

func TestCourseCreateEndpointUnknownInstructor(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	instructorRepo.On("GetByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	router := setupCourseRoutes(courseRepo, instructorRepo)
	w := perform(router, http.MethodPost, "/api/courses", gin.H{
		"name":          "CS101",
		"instructor_id": 99,
		"schedule":      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCourseGetEndpointDetail(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveDetail", mock.Anything, 10).
		Return(&model.Course{
			ID: 10, Name: "CS101", InstructorID: 5,
			Instructor: &model.Instructor{ID: 5, Name: "Dr. A"},
		}, nil)

	router := setupCourseRoutes(courseRepo, instructorRepo)
	w := perform(router, http.MethodGet, "/api/courses/10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Data, "course")
}

func TestCourseDeleteEndpoint(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveByID", mock.Anything, 10).
		Return(&model.Course{ID: 10, Name: "CS101", InstructorID: 5}, nil)
	courseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)

	router := setupCourseRoutes(courseRepo, instructorRepo)
	w := perform(router, http.MethodDelete, "/api/courses/10", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
