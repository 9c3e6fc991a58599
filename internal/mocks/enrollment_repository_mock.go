package mocks

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type EnrollmentRepository struct{ mock.Mock }

func (m *EnrollmentRepository) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int) (*model.Enrollment, error) {
	args := m.Called(ctx, studentID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) CreateBatch(ctx context.Context, enrollments []*model.Enrollment) error {
	return m.Called(ctx, enrollments).Error(0)
}

func (m *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int) ([]*model.Enrollment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int) ([]*model.Enrollment, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) Update(ctx context.Context, e *model.Enrollment) error {
	return m.Called(ctx, e).Error(0)
}
