package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"amlak-backend/internal/domain"
)

type ApartmentRepository interface {
	Create(ctx context.Context, apartment *domain.Apartment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	GetByIDWithRefs(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	Update(ctx context.Context, apartment *domain.Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, buildingID *uuid.UUID, params domain.PaginationParams) ([]domain.Apartment, int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type apartmentRepository struct {
	db *sqlx.DB
}

func NewApartmentRepository(db *sqlx.DB) ApartmentRepository {
	return &apartmentRepository{db: db}
}

func (r *apartmentRepository) Create(ctx context.Context, apartment *domain.Apartment) error {
	query := `
		INSERT INTO apartments (id, number, code, type, total_amount, is_active, building_id, department_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		apartment.ID, apartment.Number, apartment.Code, apartment.Type,
		apartment.TotalAmount, apartment.IsActive, apartment.BuildingID,
		apartment.DepartmentID, apartment.CreatedBy,
	).Scan(&apartment.CreatedAt, &apartment.UpdatedAt)
}

func (r *apartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	var apartment domain.Apartment
	query := `SELECT * FROM apartments WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &apartment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &apartment, nil
}

// GetByIDWithRefs also loads the building and department rows so callers can
// snapshot their names without extra round trips.
func (r *apartmentRepository) GetByIDWithRefs(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	apartment, err := r.GetByID(ctx, id)
	if err != nil || apartment == nil {
		return apartment, err
	}

	var building domain.Building
	err = r.db.GetContext(ctx, &building, `SELECT * FROM buildings WHERE id = $1`, apartment.BuildingID)
	if err == nil {
		apartment.Building = &building
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if apartment.DepartmentID != nil {
		var department domain.Department
		err = r.db.GetContext(ctx, &department, `SELECT * FROM departments WHERE id = $1`, *apartment.DepartmentID)
		if err == nil {
			apartment.Department = &department
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	return apartment, nil
}

func (r *apartmentRepository) Update(ctx context.Context, apartment *domain.Apartment) error {
	query := `
		UPDATE apartments
		SET number = $2, code = $3, type = $4, total_amount = $5, is_active = $6,
			building_id = $7, department_id = $8, updated_by = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		apartment.ID, apartment.Number, apartment.Code, apartment.Type,
		apartment.TotalAmount, apartment.IsActive, apartment.BuildingID,
		apartment.DepartmentID, apartment.UpdatedBy,
	).Scan(&apartment.UpdatedAt)
}

func (r *apartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE apartments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *apartmentRepository) List(ctx context.Context, buildingID *uuid.UUID, params domain.PaginationParams) ([]domain.Apartment, int64, error) {
	params.Validate()

	var total int64
	var apartments []domain.Apartment

	if buildingID != nil {
		countQuery := `SELECT COUNT(*) FROM apartments WHERE building_id = $1 AND deleted_at IS NULL`
		if err := r.db.GetContext(ctx, &total, countQuery, *buildingID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM apartments
			WHERE building_id = $1 AND deleted_at IS NULL
			ORDER BY number ASC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &apartments, query, *buildingID, params.PageSize, params.Offset())
		return apartments, total, err
	}

	countQuery := `SELECT COUNT(*) FROM apartments WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM apartments
		WHERE deleted_at IS NULL
		ORDER BY number ASC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &apartments, query, params.PageSize, params.Offset())
	return apartments, total, err
}

func (r *apartmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM apartments WHERE deleted_at IS NULL`)
	return count, err
}
