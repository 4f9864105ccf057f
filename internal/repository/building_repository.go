package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"amlak-backend/internal/domain"
)

type BuildingRepository interface {
	Create(ctx context.Context, building *domain.Building) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
	Update(ctx context.Context, building *domain.Building) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Building, int64, error)
	CountAll(ctx context.Context) (int64, error)
	AddMaintenanceCost(ctx context.Context, id uuid.UUID, amount float64) error
}

type buildingRepository struct {
	db *sqlx.DB
}

func NewBuildingRepository(db *sqlx.DB) BuildingRepository {
	return &buildingRepository{db: db}
}

func (r *buildingRepository) Create(ctx context.Context, building *domain.Building) error {
	query := `
		INSERT INTO buildings (id, name, code, last_recorded_cost, maintenance_cost, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		building.ID, building.Name, building.Code, building.LastRecordedCost,
		building.MaintenanceCost, building.IsActive, building.CreatedBy,
	).Scan(&building.CreatedAt, &building.UpdatedAt)
}

func (r *buildingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error) {
	var building domain.Building
	query := `SELECT * FROM buildings WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &building, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *buildingRepository) Update(ctx context.Context, building *domain.Building) error {
	query := `
		UPDATE buildings
		SET name = $2, code = $3, last_recorded_cost = $4, is_active = $5,
			updated_by = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		building.ID, building.Name, building.Code, building.LastRecordedCost,
		building.IsActive, building.UpdatedBy,
	).Scan(&building.UpdatedAt)
}

func (r *buildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE buildings SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *buildingRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Building, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM buildings WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var buildings []domain.Building
	query := `
		SELECT * FROM buildings
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &buildings, query, params.PageSize, params.Offset())
	return buildings, total, err
}

func (r *buildingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM buildings WHERE deleted_at IS NULL`)
	return count, err
}

func (r *buildingRepository) AddMaintenanceCost(ctx context.Context, id uuid.UUID, amount float64) error {
	query := `
		UPDATE buildings
		SET maintenance_cost = maintenance_cost + $2, last_recorded_cost = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, amount)
	return err
}
