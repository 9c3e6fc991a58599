package service

import (
	"context"
	"testing"

	"github.com/edusync/sis-backend/internal/mocks"
	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestStudentGetNotFound(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 42).Return(nil, repository.ErrNotFound)

	svc := NewStudentService(repo)
	_, err := svc.Get(context.Background(), 42)

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentCreate(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByEmail", mock.Anything, "s@x.com").Return(nil, repository.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Student")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Student).ID = 1
		}).
		Return(nil)

	svc := NewStudentService(repo)
	student, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name: "S", Email: "s@x.com", Phone: "+15550100300",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, student.ID)
	assert.Equal(t, "s@x.com", student.Email)
	repo.AssertExpectations(t)
}

func TestStudentCreateDuplicateEmail(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByEmail", mock.Anything, "s@x.com").
		Return(&model.Student{ID: 9, Email: "s@x.com"}, nil)

	svc := NewStudentService(repo)
	_, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name: "S", Email: "s@x.com", Phone: "+15550100300",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStudentUpdateUnchangedEmailSkipsCheck(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 1).
		Return(&model.Student{ID: 1, Name: "S", Email: "s@x.com", Phone: "+15550100300"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)

	svc := NewStudentService(repo)
	student, err := svc.Update(context.Background(), 1, model.UpdateStudentRequest{
		Name:  strPtr("S. Renamed"),
		Email: strPtr("s@x.com"), // same address, no re-check
	})

	assert.NoError(t, err)
	assert.Equal(t, "S. Renamed", student.Name)
	assert.Equal(t, "+15550100300", student.Phone)
	repo.AssertNotCalled(t, "GetActiveByEmail", mock.Anything, mock.Anything)
}

func TestStudentUpdateEmailConflict(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 1).
		Return(&model.Student{ID: 1, Email: "s@x.com"}, nil)
	repo.On("GetActiveByEmail", mock.Anything, "other@x.com").
		Return(&model.Student{ID: 2, Email: "other@x.com"}, nil)

	svc := NewStudentService(repo)
	_, err := svc.Update(context.Background(), 1, model.UpdateStudentRequest{
		Email: strPtr("other@x.com"),
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStudentUpdatePartialPatch(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 1).
		Return(&model.Student{ID: 1, Name: "S", Email: "s@x.com", Phone: "+15550100300"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)

	svc := NewStudentService(repo)
	student, err := svc.Update(context.Background(), 1, model.UpdateStudentRequest{
		Phone: strPtr("+15550100399"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "S", student.Name)
	assert.Equal(t, "s@x.com", student.Email)
	assert.Equal(t, "+15550100399", student.Phone)
}

func TestStudentUpdateNotFound(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 404).Return(nil, repository.ErrNotFound)

	svc := NewStudentService(repo)
	_, err := svc.Update(context.Background(), 404, model.UpdateStudentRequest{Name: strPtr("X")})

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentDeleteIsSoft(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 1).
		Return(&model.Student{ID: 1, Name: "S", Email: "s@x.com"}, nil)

	var saved *model.Student
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Student")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Student)
		}).
		Return(nil)

	svc := NewStudentService(repo)
	err := svc.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.True(t, saved.IsDeleted)
	assert.Equal(t, 1, saved.ID)
}

func TestStudentDeleteNotFound(t *testing.T) {
	repo := new(mocks.StudentRepository)
	repo.On("GetActiveByID", mock.Anything, 404).Return(nil, repository.ErrNotFound)

	svc := NewStudentService(repo)
	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrStudentNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
