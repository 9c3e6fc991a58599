package service

import (
	"context"
	"errors"
	"time"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/edusync/sis-backend/internal/repository"
	"github.com/rs/zerolog"
)

// EnrollmentService handles the student-course join. Enrollment is batched
// per student, cancellation flips the status without removing the row, and a
// (student, course) pair can only ever be claimed once — cancelled
// enrollments still block re-enrollment.
type EnrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	studentRepo    repository.StudentRepository
	courseRepo     repository.CourseRepository
	log            zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	studentRepo repository.StudentRepository,
	courseRepo repository.CourseRepository,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		log:            log.With().Str("component", "enrollment_service").Logger(),
	}
}

// CreateMany enrolls a student into every course in the request, in input
// order. All referenced records must exist and none of the pairs may already
// be claimed; the insert itself is a single transaction, so a conflict
// leaves no partial batch behind.
func (s *EnrollmentService) CreateMany(ctx context.Context, req model.CreateEnrollmentRequest) ([]*model.Enrollment, error) {
	if _, err := s.studentRepo.GetActiveByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	enrollments := make([]*model.Enrollment, 0, len(req.CourseIDs))
	for _, courseID := range req.CourseIDs {
		if _, err := s.courseRepo.GetActiveByID(ctx, courseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}

		existing, err := s.enrollmentRepo.GetByStudentAndCourse(ctx, req.StudentID, courseID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAlreadyEnrolled
		}

		enrollments = append(enrollments, &model.Enrollment{
			StudentID: req.StudentID,
			CourseID:  courseID,
			Status:    model.EnrollmentActive,
		})
	}

	if err := s.enrollmentRepo.CreateBatch(ctx, enrollments); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	s.log.Info().
		Int("student_id", req.StudentID).
		Int("count", len(enrollments)).
		Msg("student enrolled")

	return enrollments, nil
}

// FindByStudent returns the student's enrollments with the course relation
// loaded, ascending by enrollment time.
func (s *EnrollmentService) FindByStudent(ctx context.Context, studentID int) ([]*model.Enrollment, error) {
	return s.enrollmentRepo.ListByStudent(ctx, studentID)
}

// FindByCourse returns the course's enrollments with the student relation
// loaded, ascending by enrollment time.
func (s *EnrollmentService) FindByCourse(ctx context.Context, courseID int) ([]*model.Enrollment, error) {
	return s.enrollmentRepo.ListByCourse(ctx, courseID)
}

// Cancel flips an enrollment to cancelled and stamps the cancellation time.
// Cancelling an already-cancelled enrollment succeeds and keeps the original
// timestamp.
func (s *EnrollmentService) Cancel(ctx context.Context, id int) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}

	if enrollment.Status != model.EnrollmentCancelled {
		now := time.Now().UTC()
		enrollment.CancelledAt = &now
	}
	enrollment.Status = model.EnrollmentCancelled

	return s.enrollmentRepo.Update(ctx, enrollment)
}
