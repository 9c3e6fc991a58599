package repository

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access. Reads exclude soft-deleted
// rows; GetActiveDetail additionally loads the instructor and enrollments.
type CourseRepository interface {
	ListActive(ctx context.Context) ([]*model.Course, error)
	GetActiveByID(ctx context.Context, id int) (*model.Course, error)
	GetActiveDetail(ctx context.Context, id int) (*model.Course, error)
	GetActiveByNameAndInstructor(ctx context.Context, name string, instructorID int) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
}

type courseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: db}
}

const courseColumns = `id, name, description, instructor_id, schedule, is_deleted, created_at, updated_at`

func (r *courseRepository) ListActive(ctx context.Context) ([]*model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE NOT is_deleted ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*model.Course, 0)
	for rows.Next() {
		c := &model.Course{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.Schedule, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetActiveByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1 AND NOT is_deleted`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.Schedule, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return c, nil
}

// GetActiveDetail loads a course together with its instructor and all of its
// enrollments (any status), enrollments ordered by creation time.
func (r *courseRepository) GetActiveDetail(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{Instructor: &model.Instructor{Courses: make([]model.Course, 0)}}
	err := r.db.QueryRow(ctx,
		`SELECT c.id, c.name, c.description, c.instructor_id, c.schedule, c.is_deleted, c.created_at, c.updated_at,
		        i.id, i.name, i.email, i.phone, i.created_at, i.updated_at
		 FROM courses c
		 JOIN instructors i ON i.id = c.instructor_id
		 WHERE c.id = $1 AND NOT c.is_deleted`, id,
	).Scan(
		&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.Schedule, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
		&c.Instructor.ID, &c.Instructor.Name, &c.Instructor.Email, &c.Instructor.Phone,
		&c.Instructor.CreatedAt, &c.Instructor.UpdatedAt,
	)
	if err != nil {
		return nil, wrapScanErr(err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, course_id, status, created_at, updated_at, cancelled_at
		 FROM enrollments WHERE course_id = $1 ORDER BY created_at ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c.Enrollments = make([]model.Enrollment, 0)
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.CancelledAt); err != nil {
			return nil, err
		}
		c.Enrollments = append(c.Enrollments, e)
	}
	return c, rows.Err()
}

func (r *courseRepository) GetActiveByNameAndInstructor(ctx context.Context, name string, instructorID int) (*model.Course, error) {
	c := &model.Course{}
	err := r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses
		 WHERE name = $1 AND instructor_id = $2 AND NOT is_deleted`, name, instructorID,
	).Scan(&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.Schedule, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return c, nil
}

func (r *courseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO courses (name, description, instructor_id, schedule)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_deleted, created_at, updated_at`,
		c.Name, c.Description, c.InstructorID, c.Schedule,
	).Scan(&c.ID, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	return wrapWriteErr(err)
}

// Update persists the whole mutable row, including the soft-delete flag.
func (r *courseRepository) Update(ctx context.Context, c *model.Course) error {
	err := r.db.QueryRow(ctx,
		`UPDATE courses
		 SET name = $1, description = $2, instructor_id = $3, schedule = $4, is_deleted = $5,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING updated_at`,
		c.Name, c.Description, c.InstructorID, c.Schedule, c.IsDeleted, c.ID,
	).Scan(&c.UpdatedAt)
	return wrapWriteErr(wrapScanErr(err))
}
