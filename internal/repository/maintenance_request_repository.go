package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"amlak-backend/internal/domain"
)

type MaintenanceRequestRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, status *domain.RequestStatus, params domain.PaginationParams) ([]domain.MaintenanceRequest, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	UpdateApproval(ctx context.Context, id uuid.UUID, approvalType domain.ApprovalType, approval *domain.Approval) error
	AddAction(ctx context.Context, action *domain.Action) error
	ListActions(ctx context.Context, requestID uuid.UUID) ([]domain.Action, error)
	CountAll(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	SumTotalCost(ctx context.Context) (float64, error)
}

type maintenanceRequestRepository struct {
	db *sqlx.DB
}

func NewMaintenanceRequestRepository(db *sqlx.DB) MaintenanceRequestRepository {
	return &maintenanceRequestRepository{db: db}
}

const requestColumns = `
	id, apartment_id, apartment_snapshot, maintenance_type, notes, total_cost, status,
	manager_is_approved AS "manager_approval.is_approved",
	manager_approval_date AS "manager_approval.approval_date",
	manager_notes AS "manager_approval.notes",
	manager_approver_id AS "manager_approval.approver_id",
	manager_approver_name AS "manager_approval.approver_name",
	supervisor_is_approved AS "supervisor_approval.is_approved",
	supervisor_approval_date AS "supervisor_approval.approval_date",
	supervisor_notes AS "supervisor_approval.notes",
	supervisor_approver_id AS "supervisor_approval.approver_id",
	supervisor_approver_name AS "supervisor_approval.approver_name",
	created_by, created_at, updated_at`

func (r *maintenanceRequestRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO maintenance_requests (id, apartment_id, apartment_snapshot, maintenance_type, notes, total_cost, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	if err := tx.QueryRowxContext(ctx, query,
		req.ID, req.ApartmentID, req.ApartmentSnapshot, req.MaintenanceType,
		req.Notes, req.TotalCost, req.Status, req.CreatedBy,
	).Scan(&req.CreatedAt, &req.UpdatedAt); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO cost_items (request_id, position, classification_type, cost, quantity, total)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i, item := range req.CostItems {
		if _, err := tx.ExecContext(ctx, itemQuery,
			req.ID, i, item.ClassificationType, item.Cost, item.Quantity, item.Total,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *maintenanceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error) {
	var req domain.MaintenanceRequest
	query := `SELECT ` + requestColumns + ` FROM maintenance_requests WHERE id = $1`

	err := r.db.GetContext(ctx, &req, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listCostItems(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	req.CostItems = items[id]

	actions, err := r.ListActions(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Actions = actions

	return &req, nil
}

func (r *maintenanceRequestRepository) List(ctx context.Context, status *domain.RequestStatus, params domain.PaginationParams) ([]domain.MaintenanceRequest, int64, error) {
	params.Validate()

	var total int64
	var requests []domain.MaintenanceRequest

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM maintenance_requests WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `SELECT ` + requestColumns + `
			FROM maintenance_requests
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		if err := r.db.SelectContext(ctx, &requests, query, *status, params.PageSize, params.Offset()); err != nil {
			return nil, 0, err
		}
	} else {
		countQuery := `SELECT COUNT(*) FROM maintenance_requests`
		if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
			return nil, 0, err
		}

		query := `SELECT ` + requestColumns + `
			FROM maintenance_requests
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`
		if err := r.db.SelectContext(ctx, &requests, query, params.PageSize, params.Offset()); err != nil {
			return nil, 0, err
		}
	}

	if len(requests) == 0 {
		return requests, total, nil
	}

	ids := make([]uuid.UUID, len(requests))
	for i := range requests {
		ids[i] = requests[i].ID
	}

	items, err := r.listCostItems(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range requests {
		requests[i].CostItems = items[requests[i].ID]
	}

	return requests, total, nil
}

type costItemRow struct {
	RequestID uuid.UUID `db:"request_id"`
	domain.CostItem
}

func (r *maintenanceRequestRepository) listCostItems(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]domain.CostItem, error) {
	ids := make([]string, len(requestIDs))
	for i, id := range requestIDs {
		ids[i] = id.String()
	}

	var rows []costItemRow
	query := `
		SELECT request_id, classification_type, cost, quantity, total
		FROM cost_items
		WHERE request_id = ANY($1)
		ORDER BY request_id, position`

	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID][]domain.CostItem, len(requestIDs))
	for _, row := range rows {
		items[row.RequestID] = append(items[row.RequestID], row.CostItem)
	}
	return items, nil
}

func (r *maintenanceRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	query := `
		UPDATE maintenance_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *maintenanceRequestRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approvalType domain.ApprovalType, approval *domain.Approval) error {
	var query string
	if approvalType == domain.ApprovalManager {
		query = `
			UPDATE maintenance_requests
			SET manager_is_approved = $2, manager_approval_date = $3, manager_notes = $4,
				manager_approver_id = $5, manager_approver_name = $6, updated_at = NOW()
			WHERE id = $1`
	} else {
		query = `
			UPDATE maintenance_requests
			SET supervisor_is_approved = $2, supervisor_approval_date = $3, supervisor_notes = $4,
				supervisor_approver_id = $5, supervisor_approver_name = $6, updated_at = NOW()
			WHERE id = $1`
	}

	result, err := r.db.ExecContext(ctx, query, id,
		approval.IsApproved, approval.ApprovalDate, approval.Notes,
		approval.ApproverID, approval.ApproverName,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *maintenanceRequestRepository) AddAction(ctx context.Context, action *domain.Action) error {
	query := `
		INSERT INTO request_actions (id, request_id, user_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		action.ID, action.RequestID, action.User.ID, action.Description,
	).Scan(&action.CreatedAt)
}

func (r *maintenanceRequestRepository) ListActions(ctx context.Context, requestID uuid.UUID) ([]domain.Action, error) {
	actions := []domain.Action{}
	query := `
		SELECT
			a.id, a.request_id, a.description, a.created_at,
			u.id AS "user.id", u.name AS "user.name"
		FROM request_actions a
		JOIN users u ON a.user_id = u.id
		WHERE a.request_id = $1
		ORDER BY a.created_at ASC`

	err := r.db.SelectContext(ctx, &actions, query, requestID)
	return actions, err
}

func (r *maintenanceRequestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM maintenance_requests`)
	return count, err
}

func (r *maintenanceRequestRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM maintenance_requests WHERE status = 'pending'`)
	return count, err
}

func (r *maintenanceRequestRepository) SumTotalCost(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum, `SELECT COALESCE(SUM(total_cost), 0) FROM maintenance_requests`)
	return sum, err
}
