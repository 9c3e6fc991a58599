package mocks

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type InstructorRepository struct{ mock.Mock }

func (m *InstructorRepository) ListWithCourses(ctx context.Context) ([]*model.Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Instructor), args.Error(1)
}

func (m *InstructorRepository) GetWithCourses(ctx context.Context, id int) (*model.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Instructor), args.Error(1)
}

func (m *InstructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Instructor), args.Error(1)
}

func (m *InstructorRepository) GetByEmail(ctx context.Context, email string) (*model.Instructor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Instructor), args.Error(1)
}

func (m *InstructorRepository) Create(ctx context.Context, i *model.Instructor) error {
	return m.Called(ctx, i).Error(0)
}

func (m *InstructorRepository) Update(ctx context.Context, i *model.Instructor) error {
	return m.Called(ctx, i).Error(0)
}

func (m *InstructorRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
