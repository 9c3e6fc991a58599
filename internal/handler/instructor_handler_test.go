package handler

import (
	"net/http"
	"testing"

	"github.com/edusync/sis-backend/internal/mocks"
	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
	"github.com/edusync/sis-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupInstructorRoutes(repo *mocks.InstructorRepository) *gin.Engine {
	h := NewInstructorHandler(service.NewInstructorService(repo))
	router := newTestRouter()
	router.GET("/api/instructors", h.List)
	router.GET("/api/instructors/:id", h.Get)
	router.POST("/api/instructors", h.Create)
	router.PUT("/api/instructors/:id", h.Update)
	router.DELETE("/api/instructors/:id", h.Delete)
	return router
}

func TestInstructorDeleteEndpointBlocked(t *testing.T) {
	repo := new(mocks.InstructorRepository)
	repo.On("GetByID", mock.Anything, 1).Return(&model.Instructor{ID: 1}, nil)
	repo.On("Delete", mock.Anything, 1).Return(repository.ErrRestricted)

	router := setupInstructorRoutes(repo)
	w := perform(router, http.MethodDelete, "/api/instructors/1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "DEPENDENCY_EXISTS", env.Error.Code)
}

func TestInstructorDeleteEndpoint(t *testing.T) {
	repo := new(mocks.InstructorRepository)
	repo.On("GetByID", mock.Anything, 1).Return(&model.Instructor{ID: 1}, nil)
	repo.On("Delete", mock.Anything, 1).Return(nil)

	router := setupInstructorRoutes(repo)
	w := perform(router, http.MethodDelete, "/api/instructors/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestInstructorCreateEndpointDuplicateEmail(t *testing.T) {
	repo := new(mocks.InstructorRepository)
	repo.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&model.Instructor{ID: 3, Email: "a@x.com"}, nil)

	router := setupInstructorRoutes(repo)
	w := perform(router, http.MethodPost, "/api/instructors", gin.H{
		"name":  "Dr. A",
		"email": "a@x.com",
		"phone": "+15550100200",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "EMAIL_TAKEN", env.Error.Code)
}

func TestInstructorListEndpoint(t *testing.T) {
	repo := new(mocks.InstructorRepository)
	repo.On("ListWithCourses", mock.Anything).
		Return([]*model.Instructor{
			{ID: 1, Name: "Dr. A", Email: "a@x.com", Courses: []model.Course{{ID: 10, Name: "CS101"}}},
		}, nil)

	router := setupInstructorRoutes(repo)
	w := perform(router, http.MethodGet, "/api/instructors", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Data, "instructors")
}
