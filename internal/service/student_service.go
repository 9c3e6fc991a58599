package service

import (
	"context"
	"errors"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
)

// StudentService handles student lifecycle and email uniqueness.
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// List returns all non-deleted students, ascending by id.
func (s *StudentService) List(ctx context.Context) ([]*model.Student, error) {
	return s.studentRepo.ListActive(ctx)
}

// Get returns a non-deleted student by id.
func (s *StudentService) Get(ctx context.Context, id int) (*model.Student, error) {
	student, err := s.studentRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// Create registers a new student. The email must not be held by any live
// student.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	student := &model.Student{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return student, nil
}

// Update patches the provided fields onto the student. The email uniqueness
// re-check only runs when the email is present and actually changes.
func (s *StudentService) Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != student.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		student.Email = *req.Email
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// Delete soft-deletes a student; the row stays in storage.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	student, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	student.IsDeleted = true
	return s.studentRepo.Update(ctx, student)
}

func (s *StudentService) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.studentRepo.GetActiveByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	return nil
}
