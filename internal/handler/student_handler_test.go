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

func setupStudentRoutes(repo *mocks.StudentRepository) *gin.Engine {
	h := NewStudentHandler(service.NewStudentService(repo))
	router := newTestRouter()
	router.GET("/api/students", h.List)
	router.GET("/api/students/:id", h.Get)
	router.POST("/api/students", h.Create)
	router.PUT("/api/students/:id", h.Update)
	router.DELETE("/api/students/:id", h.Delete)
	return router
}

func TestStudentCreateEndpoint(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByEmail", mock.Anything, "jane@example.com").Return(nil, repository.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Student")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Student).ID = 1
		}).
		Return(nil)

	router := setupStudentRoutes(repo)
	w := perform(router, http.MethodPost, "/api/students", gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"phone": "+1 555-010-0300",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Data, "student")
	assert.Nil(t, env.Error)
}

func TestStudentCreateEndpointValidation(t *testing.T) {
	repo := new(mocks.StudentRepository)
	router := setupStudentRoutes(repo)

	w := perform(router, http.MethodPost, "/api/students", gin.H{
		"name":  "Jane Doe",
		"email": "not-an-email",
		"phone": "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "email")
	assert.Contains(t, env.Error.Fields, "phone")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStudentCreateEndpointDuplicateEmail(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByEmail", mock.Anything, "jane@example.com").
		Return(&model.Student{ID: 9, Email: "jane@example.com"}, nil)

	router := setupStudentRoutes(repo)
	w := perform(router, http.MethodPost, "/api/students", gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"phone": "+15550100300",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "EMAIL_TAKEN", env.Error.Code)
}

func TestStudentGetEndpointNotFound(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 404).Return(nil, repository.ErrNotFound)

	router := setupStudentRoutes(repo)
	w := perform(router, http.MethodGet, "/api/students/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestStudentGetEndpointBadID(t *testing.T) {
	repo := new(mocks.StudentRepository)
	router := setupStudentRoutes(repo)

	w := perform(router, http.MethodGet, "/api/students/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestStudentDeleteEndpoint(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 1).
		Return(&model.Student{ID: 1, Email: "jane@example.com"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)

	router := setupStudentRoutes(repo)
	w := perform(router, http.MethodDelete, "/api/students/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestStudentListEndpoint(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("ListActive", mock.Anything).
		Return([]*model.Student{{ID: 1, Name: "Jane", Email: "jane@example.com"}}, nil)

	router := setupStudentRoutes(repo)
	w := perform(router, http.MethodGet, "/api/students", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Data, "students")
}
