package mocks

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type StudentRepository struct{ mock.Mock }

func (m *StudentRepository) ListActive(ctx context.Context) ([]*model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Student), args.Error(1)
}

func (m *StudentRepository) GetActiveByID(ctx context.Context, id int) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *StudentRepository) GetActiveByEmail(ctx context.Context, email string) (*model.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	return m.Called(ctx, s).Error(0)
}
