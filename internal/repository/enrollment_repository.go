package repository

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnrollmentRepository handles the student-course join table. Lookups are
// status-blind: a cancelled enrollment still claims its (student, course)
// pair.
type EnrollmentRepository interface {
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int) (*model.Enrollment, error)
	CreateBatch(ctx context.Context, enrollments []*model.Enrollment) error
	ListByStudent(ctx context.Context, studentID int) ([]*model.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int) ([]*model.Enrollment, error)
	Update(ctx context.Context, e *model.Enrollment) error
}

type enrollmentRepository struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

const enrollmentColumns = `id, student_id, course_id, status, created_at, updated_at, cancelled_at`

func (r *enrollmentRepository) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.db.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, id,
	).Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.CancelledAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return e, nil
}

func (r *enrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.db.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments
		 WHERE student_id = $1 AND course_id = $2`, studentID, courseID,
	).Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.CancelledAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return e, nil
}

// CreateBatch inserts all enrollments inside a single transaction, so a
// conflict on any row leaves no partial batch behind.
func (r *enrollmentRepository) CreateBatch(ctx context.Context, enrollments []*model.Enrollment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, e := range enrollments {
		err := tx.QueryRow(ctx,
			`INSERT INTO enrollments (student_id, course_id, status)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at, updated_at`,
			e.StudentID, e.CourseID, e.Status,
		).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return wrapWriteErr(err)
		}
	}
	return tx.Commit(ctx)
}

// ListByStudent returns the student's enrollments with the course relation
// loaded, ordered by enrollment time.
func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID int) ([]*model.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.student_id, e.course_id, e.status, e.created_at, e.updated_at, e.cancelled_at,
		        c.id, c.name, c.description, c.instructor_id, c.schedule, c.is_deleted, c.created_at, c.updated_at
		 FROM enrollments e
		 JOIN courses c ON c.id = e.course_id
		 WHERE e.student_id = $1
		 ORDER BY e.created_at ASC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]*model.Enrollment, 0)
	for rows.Next() {
		e := &model.Enrollment{Course: &model.Course{}}
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.CancelledAt,
			&e.Course.ID, &e.Course.Name, &e.Course.Description, &e.Course.InstructorID,
			&e.Course.Schedule, &e.Course.IsDeleted, &e.Course.CreatedAt, &e.Course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ListByCourse returns the course's enrollments with the student relation
// loaded, ordered by enrollment time.
func (r *enrollmentRepository) ListByCourse(ctx context.Context, courseID int) ([]*model.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.student_id, e.course_id, e.status, e.created_at, e.updated_at, e.cancelled_at,
		        s.id, s.name, s.email, s.phone, s.is_deleted, s.created_at, s.updated_at
		 FROM enrollments e
		 JOIN students s ON s.id = e.student_id
		 WHERE e.course_id = $1
		 ORDER BY e.created_at ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]*model.Enrollment, 0)
	for rows.Next() {
		e := &model.Enrollment{Student: &model.Student{}}
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.CancelledAt,
			&e.Student.ID, &e.Student.Name, &e.Student.Email, &e.Student.Phone,
			&e.Student.IsDeleted, &e.Student.CreatedAt, &e.Student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepository) Update(ctx context.Context, e *model.Enrollment) error {
	err := r.db.QueryRow(ctx,
		`UPDATE enrollments
		 SET status = $1, cancelled_at = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3
		 RETURNING updated_at`,
		e.Status, e.CancelledAt, e.ID,
	).Scan(&e.UpdatedAt)
	return wrapScanErr(err)
}
