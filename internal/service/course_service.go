package service

import (
	"context"
	"errors"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
)

// CourseService handles course lifecycle. A course name is unique per
// instructor among live courses, and the instructor FK must resolve before
// any write.
type CourseService struct {
	courseRepo     repository.CourseRepository
	instructorRepo repository.InstructorRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo repository.CourseRepository, instructorRepo repository.InstructorRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, instructorRepo: instructorRepo}
}

// List returns all non-deleted courses, ascending by id.
func (s *CourseService) List(ctx context.Context) ([]*model.Course, error) {
	return s.courseRepo.ListActive(ctx)
}

// Get returns a non-deleted course with its instructor and enrollments.
func (s *CourseService) Get(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.courseRepo.GetActiveDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// Create adds a course after verifying the instructor exists and no live
// course with the same (name, instructor) pair does.
func (s *CourseService) Create(ctx context.Context, req model.CreateCourseRequest) (*model.Course, error) {
	if err := s.checkInstructorExists(ctx, req.InstructorID); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, req.Name, req.InstructorID, 0); err != nil {
		return nil, err
	}

	course := &model.Course{
		Name:         req.Name,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Schedule:     req.Schedule,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateCourse
		}
		return nil, err
	}
	return course, nil
}

// Update patches the provided fields onto the course. The (name, instructor)
// uniqueness re-check only runs when the effective pair actually changes.
func (s *CourseService) Update(ctx context.Context, id int, req model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.courseRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	nextName := course.Name
	if req.Name != nil {
		nextName = *req.Name
	}
	nextInstructorID := course.InstructorID
	if req.InstructorID != nil {
		nextInstructorID = *req.InstructorID
	}

	if nextInstructorID != course.InstructorID {
		if err := s.checkInstructorExists(ctx, nextInstructorID); err != nil {
			return nil, err
		}
	}
	if nextName != course.Name || nextInstructorID != course.InstructorID {
		if err := s.checkNameFree(ctx, nextName, nextInstructorID, course.ID); err != nil {
			return nil, err
		}
	}

	course.Name = nextName
	course.InstructorID = nextInstructorID
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Schedule != nil {
		course.Schedule = *req.Schedule
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateCourse
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// Delete soft-deletes a course; the row and its enrollments stay in storage.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	course, err := s.courseRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	course.IsDeleted = true
	return s.courseRepo.Update(ctx, course)
}

func (s *CourseService) checkInstructorExists(ctx context.Context, instructorID int) error {
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInstructorNotFound
		}
		return err
	}
	return nil
}

// checkNameFree fails when a live course other than excludeID already holds
// the (name, instructor) pair.
func (s *CourseService) checkNameFree(ctx context.Context, name string, instructorID, excludeID int) error {
	existing, err := s.courseRepo.GetActiveByNameAndInstructor(ctx, name, instructorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return ErrDuplicateCourse
	}
	return nil
}
