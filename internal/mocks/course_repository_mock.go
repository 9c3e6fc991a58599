package mocks

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type CourseRepository struct{ mock.Mock }

func (m *CourseRepository) ListActive(ctx context.Context) ([]*model.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Course), args.Error(1)
}

func (m *CourseRepository) GetActiveByID(ctx context.Context, id int) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *CourseRepository) GetActiveDetail(ctx context.Context, id int) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *CourseRepository) GetActiveByNameAndInstructor(ctx context.Context, name string, instructorID int) (*model.Course, error) {
	args := m.Called(ctx, name, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	return m.Called(ctx, c).Error(0)
}
