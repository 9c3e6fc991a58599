package service

import (
	"context"
	"testing"
	"time"

	"github.com/edusync/sis-backend/internal/mocks"
	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(i int) *int { return &i }

func TestCourseCreate(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	instructorRepo.On("GetByID", mock.Anything, 5).Return(&model.Instructor{ID: 5}, nil)
	courseRepo.On("GetActiveByNameAndInstructor", mock.Anything, "CS101", 5).
		Return(nil, repository.ErrNotFound)
	courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Course).ID = 10
		}).
		Return(nil)

	svc := NewCourseService(courseRepo, instructorRepo)
	course, err := svc.Create(context.Background(), model.CreateCourseRequest{
		Name: "CS101", InstructorID: 5, Schedule: time.Now().Add(24 * time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, course.ID)
	assert.Equal(t, 5, course.InstructorID)
}

func TestCourseCreateUnknownInstructor(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	instructorRepo.On("GetByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	svc := NewCourseService(courseRepo, instructorRepo)
	_, err := svc.Create(context.Background(), model.CreateCourseRequest{
		Name: "CS101", InstructorID: 99, Schedule: time.Now(),
	})

	assert.ErrorIs(t, err, ErrInstructorNotFound)
	courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCourseCreateDuplicatePair(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	instructorRepo.On("GetByID", mock.Anything, 5).Return(&model.Instructor{ID: 5}, nil)
	courseRepo.On("GetActiveByNameAndInstructor", mock.Anything, "CS101", 5).
		Return(&model.Course{ID: 7, Name: "CS101", InstructorID: 5}, nil)

	svc := NewCourseService(courseRepo, instructorRepo)
	_, err := svc.Create(context.Background(), model.CreateCourseRequest{
		Name: "CS101", InstructorID: 5, Schedule: time.Now(),
	})

	assert.ErrorIs(t, err, ErrDuplicateCourse)
	courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCourseUpdateUnchangedPairSkipsCheck(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveByID", mock.Anything, 10).
		Return(&model.Course{ID: 10, Name: "CS101", InstructorID: 5}, nil)
	courseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)

	svc := NewCourseService(courseRepo, instructorRepo)
	course, err := svc.Update(context.Background(), 10, model.UpdateCourseRequest{
		Name:        strPtr("CS101"), // same pair, no re-check
		Description: strPtr("Intro course"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Intro course", course.Description)
	courseRepo.AssertNotCalled(t, "GetActiveByNameAndInstructor", mock.Anything, mock.Anything, mock.Anything)
	instructorRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCourseUpdateRenameConflict(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveByID", mock.Anything, 10).
		Return(&model.Course{ID: 10, Name: "CS101", InstructorID: 5}, nil)
	courseRepo.On("GetActiveByNameAndInstructor", mock.Anything, "CS102", 5).
		Return(&model.Course{ID: 11, Name: "CS102", InstructorID: 5}, nil)

	svc := NewCourseService(courseRepo, instructorRepo)
	_, err := svc.Update(context.Background(), 10, model.UpdateCourseRequest{
		Name: strPtr("CS102"),
	})

	assert.ErrorIs(t, err, ErrDuplicateCourse)
	courseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCourseUpdateMoveToUnknownInstructor(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveByID", mock.Anything, 10).
		Return(&model.Course{ID: 10, Name: "CS101", InstructorID: 5}, nil)
	instructorRepo.On("GetByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	svc := NewCourseService(courseRepo, instructorRepo)
	_, err := svc.Update(context.Background(), 10, model.UpdateCourseRequest{
		InstructorID: intPtr(99),
	})

	assert.ErrorIs(t, err, ErrInstructorNotFound)
	courseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCourseGetNotFound(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveDetail", mock.Anything, 404).Return(nil, repository.ErrNotFound)

	svc := NewCourseService(courseRepo, instructorRepo)
	_, err := svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseDeleteIsSoft(t *testing.T) {
	courseRepo := new(mocks.CourseRepository)
	instructorRepo := new(mocks.InstructorRepository)

	courseRepo.On("GetActiveByID", mock.Anything, 10).
		Return(&model.Course{ID: 10, Name: "CS101", InstructorID: 5}, nil)

	var saved *model.Course
	courseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Course")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Course)
		}).
		Return(nil)

	svc := NewCourseService(courseRepo, instructorRepo)
	err := svc.Delete(context.Background(), 10)

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.True(t, saved.IsDeleted)
}
