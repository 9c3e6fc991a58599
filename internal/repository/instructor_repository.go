package repository

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InstructorRepository handles instructor data access. Instructors have no
// soft-delete flag; Delete removes the row and fails with ErrRestricted when
// courses still reference it.
type InstructorRepository interface {
	ListWithCourses(ctx context.Context) ([]*model.Instructor, error)
	GetWithCourses(ctx context.Context, id int) (*model.Instructor, error)
	GetByID(ctx context.Context, id int) (*model.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*model.Instructor, error)
	Create(ctx context.Context, i *model.Instructor) error
	Update(ctx context.Context, i *model.Instructor) error
	Delete(ctx context.Context, id int) error
}

type instructorRepository struct {
	db *pgxpool.Pool
}

func NewInstructorRepository(db *pgxpool.Pool) InstructorRepository {
	return &instructorRepository{db: db}
}

const instructorColumns = `id, name, email, phone, created_at, updated_at`

func (r *instructorRepository) ListWithCourses(ctx context.Context) ([]*model.Instructor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+instructorColumns+` FROM instructors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instructors := make([]*model.Instructor, 0)
	byID := make(map[int]*model.Instructor)
	ids := make([]int, 0)
	for rows.Next() {
		i := &model.Instructor{Courses: make([]model.Course, 0)}
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		instructors = append(instructors, i)
		byID[i.ID] = i
		ids = append(ids, i.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return instructors, nil
	}

	courses, err := r.coursesForInstructors(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		if owner, ok := byID[c.InstructorID]; ok {
			owner.Courses = append(owner.Courses, c)
		}
	}
	return instructors, nil
}

func (r *instructorRepository) GetWithCourses(ctx context.Context, id int) (*model.Instructor, error) {
	i, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	courses, err := r.coursesForInstructors(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	i.Courses = courses
	return i, nil
}

// coursesForInstructors fetches the live courses of the given instructors in
// one query, ordered by course id.
func (r *instructorRepository) coursesForInstructors(ctx context.Context, ids []int) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, instructor_id, schedule, is_deleted, created_at, updated_at
		 FROM courses
		 WHERE instructor_id = ANY($1) AND NOT is_deleted
		 ORDER BY id ASC`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]model.Course, 0)
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.InstructorID, &c.Schedule, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *instructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	i := &model.Instructor{Courses: make([]model.Course, 0)}
	err := r.db.QueryRow(ctx,
		`SELECT `+instructorColumns+` FROM instructors WHERE id = $1`, id,
	).Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return i, nil
}

func (r *instructorRepository) GetByEmail(ctx context.Context, email string) (*model.Instructor, error) {
	i := &model.Instructor{Courses: make([]model.Course, 0)}
	err := r.db.QueryRow(ctx,
		`SELECT `+instructorColumns+` FROM instructors WHERE email = $1`, email,
	).Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return i, nil
}

func (r *instructorRepository) Create(ctx context.Context, i *model.Instructor) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO instructors (name, email, phone)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		i.Name, i.Email, i.Phone,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	return wrapWriteErr(err)
}

func (r *instructorRepository) Update(ctx context.Context, i *model.Instructor) error {
	err := r.db.QueryRow(ctx,
		`UPDATE instructors
		 SET name = $1, email = $2, phone = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4
		 RETURNING updated_at`,
		i.Name, i.Email, i.Phone, i.ID,
	).Scan(&i.UpdatedAt)
	return wrapWriteErr(wrapScanErr(err))
}

func (r *instructorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	return wrapWriteErr(err)
}
