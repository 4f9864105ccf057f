package attachment

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"amlak-backend/internal/config"
	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
)

type Service interface {
	Upload(ctx context.Context, requestID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader, caption *string, actorID uuid.UUID) (*domain.Attachment, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	attachmentRepo repository.AttachmentRepository
	requestRepo    repository.MaintenanceRequestRepository
	client         *minio.Client
	cfg            *config.Config
}

func NewService(attachmentRepo repository.AttachmentRepository, requestRepo repository.MaintenanceRequestRepository, client *minio.Client, cfg *config.Config) Service {
	return &service{
		attachmentRepo: attachmentRepo,
		requestRepo:    requestRepo,
		client:         client,
		cfg:            cfg,
	}
}

func (s *service) Upload(ctx context.Context, requestID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader, caption *string, actorID uuid.UUID) (*domain.Attachment, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}

	id := uuid.New()
	storagePath := fmt.Sprintf("requests/%s/%s%s", requestID, id, filepath.Ext(fileName))

	_, err = s.client.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	attachment := &domain.Attachment{
		ID:          id,
		RequestID:   requestID,
		UploadedBy:  actorID,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		StoragePath: storagePath,
		Caption:     caption,
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// roll back the stored object so the bucket does not accumulate orphans
		_ = s.client.RemoveObject(context.Background(), s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	attachment.URL = s.publicURL(storagePath)
	return attachment, nil
}

func (s *service) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Attachment, error) {
	attachments, err := s.attachmentRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		attachments[i].URL = s.publicURL(attachments[i].StoragePath)
	}
	return attachments, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if attachment == nil {
		return domain.ErrAttachmentNotFound
	}

	if err := s.client.RemoveObject(ctx, s.cfg.MinIOBucket, attachment.StoragePath, minio.RemoveObjectOptions{}); err != nil {
		return err
	}

	return s.attachmentRepo.Delete(ctx, id)
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}
