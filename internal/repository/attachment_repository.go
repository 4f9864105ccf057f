package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"amlak-backend/internal/domain"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type attachmentRepository struct {
	db *sqlx.DB
}

func NewAttachmentRepository(db *sqlx.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	query := `
		INSERT INTO attachments (id, request_id, uploaded_by, file_name, file_size, mime_type, storage_path, caption)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		attachment.ID, attachment.RequestID, attachment.UploadedBy,
		attachment.FileName, attachment.FileSize, attachment.MimeType,
		attachment.StoragePath, attachment.Caption,
	).Scan(&attachment.CreatedAt)
}

func (r *attachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	var attachment domain.Attachment
	query := `SELECT * FROM attachments WHERE id = $1`

	err := r.db.GetContext(ctx, &attachment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Attachment, error) {
	attachments := []domain.Attachment{}
	query := `SELECT * FROM attachments WHERE request_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &attachments, query, requestID)
	return attachments, err
}

func (r *attachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM attachments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
