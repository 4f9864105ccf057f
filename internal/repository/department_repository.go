package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"amlak-backend/internal/domain"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Update(ctx context.Context, department *domain.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Department, int64, error)
}

type departmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *domain.Department) error {
	query := `
		INSERT INTO departments (id, name, code, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		department.ID, department.Name, department.Code, department.CreatedBy,
	).Scan(&department.CreatedAt, &department.UpdatedAt)
}

func (r *departmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	var department domain.Department
	query := `SELECT * FROM departments WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &department, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *domain.Department) error {
	query := `
		UPDATE departments
		SET name = $2, code = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		department.ID, department.Name, department.Code, department.UpdatedBy,
	).Scan(&department.UpdatedAt)
}

func (r *departmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE departments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *departmentRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Department, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM departments WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var departments []domain.Department
	query := `
		SELECT * FROM departments
		WHERE deleted_at IS NULL
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &departments, query, params.PageSize, params.Offset())
	return departments, total, err
}
