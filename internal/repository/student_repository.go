package repository

import (
	"context"

	"github.com/edusync/sis-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student data access. Soft-deleted rows are
// excluded from every read; only Update can flip the flag.
type StudentRepository interface {
	ListActive(ctx context.Context) ([]*model.Student, error)
	GetActiveByID(ctx context.Context, id int) (*model.Student, error)
	GetActiveByEmail(ctx context.Context, email string) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
}

type studentRepository struct {
	db *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, name, email, phone, is_deleted, created_at, updated_at`

func (r *studentRepository) ListActive(ctx context.Context) ([]*model.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students WHERE NOT is_deleted ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*model.Student, 0)
	for rows.Next() {
		s := &model.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentRepository) GetActiveByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1 AND NOT is_deleted`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return s, nil
}

func (r *studentRepository) GetActiveByEmail(ctx context.Context, email string) (*model.Student, error) {
	s := &model.Student{}
	err := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1 AND NOT is_deleted`, email,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return s, nil
}

func (r *studentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO students (name, email, phone)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_deleted, created_at, updated_at`,
		s.Name, s.Email, s.Phone,
	).Scan(&s.ID, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt)
	return wrapWriteErr(err)
}

// Update persists the whole mutable row, including the soft-delete flag.
func (r *studentRepository) Update(ctx context.Context, s *model.Student) error {
	err := r.db.QueryRow(ctx,
		`UPDATE students
		 SET name = $1, email = $2, phone = $3, is_deleted = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING updated_at`,
		s.Name, s.Email, s.Phone, s.IsDeleted, s.ID,
	).Scan(&s.UpdatedAt)
	return wrapWriteErr(wrapScanErr(err))
}
