package service

import (
	"context"
	"errors"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
)

// InstructorService handles instructor lifecycle. Instructors are deleted
// physically; email uniqueness is global since there is no soft-delete flag.
type InstructorService struct {
	instructorRepo repository.InstructorRepository
}

// NewInstructorService creates a new InstructorService.
func NewInstructorService(instructorRepo repository.InstructorRepository) *InstructorService {
	return &InstructorService{instructorRepo: instructorRepo}
}

// List returns all instructors with their courses loaded, ascending by id.
func (s *InstructorService) List(ctx context.Context) ([]*model.Instructor, error) {
	return s.instructorRepo.ListWithCourses(ctx)
}

// Get returns an instructor with their courses loaded.
func (s *InstructorService) Get(ctx context.Context, id int) (*model.Instructor, error) {
	instructor, err := s.instructorRepo.GetWithCourses(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}
	return instructor, nil
}

// Create registers a new instructor with a globally unique email.
func (s *InstructorService) Create(ctx context.Context, req model.CreateInstructorRequest) (*model.Instructor, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	instructor := &model.Instructor{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Courses: make([]model.Course, 0),
	}
	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return instructor, nil
}

// Update patches the provided fields onto the instructor, re-checking email
// uniqueness only when the email actually changes.
func (s *InstructorService) Update(ctx context.Context, id int, req model.UpdateInstructorRequest) (*model.Instructor, error) {
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != instructor.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		instructor.Email = *req.Email
	}
	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Phone != nil {
		instructor.Phone = *req.Phone
	}

	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}
	return instructor, nil
}

// Delete physically removes an instructor. The courses FK blocks deletion
// while the instructor still teaches live or soft-deleted courses.
func (s *InstructorService) Delete(ctx context.Context, id int) error {
	if _, err := s.instructorRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInstructorNotFound
		}
		return err
	}
	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestricted) {
			return ErrInstructorHasCourses
		}
		return err
	}
	return nil
}

func (s *InstructorService) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.instructorRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	return nil
}
