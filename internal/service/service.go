package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"amlak-backend/internal/config"
	"amlak-backend/internal/pkg/cache"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/apartment"
	"amlak-backend/internal/service/attachment"
	"amlak-backend/internal/service/audit"
	"amlak-backend/internal/service/auth"
	"amlak-backend/internal/service/building"
	"amlak-backend/internal/service/dashboard"
	"amlak-backend/internal/service/department"
	"amlak-backend/internal/service/email"
	"amlak-backend/internal/service/maintenance"
	"amlak-backend/internal/service/notification"
	"amlak-backend/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Building     building.Service
	Department   department.Service
	Apartment    apartment.Service
	Maintenance  maintenance.Service
	Attachment   attachment.Service
	Notification notification.Service
	Audit        audit.Service
	Dashboard    dashboard.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	c := cache.NewRedisCache(redisClient)

	emailSvc := email.NewService(cfg)
	auditSvc := audit.NewService(repos.AuditLog)
	notifSvc := notification.NewService(repos.Notification, repos.User, emailSvc)

	return &Services{
		Auth:         auth.NewService(repos.User, repos.Session, emailSvc, cfg),
		User:         user.NewService(repos.User, auditSvc),
		Building:     building.NewService(repos.Building, auditSvc),
		Department:   department.NewService(repos.Department, auditSvc),
		Apartment:    apartment.NewService(repos.Apartment, repos.Building, repos.Department, auditSvc),
		Maintenance:  maintenance.NewService(repos.MaintenanceRequest, repos.Apartment, repos.Building, repos.User, auditSvc, notifSvc, c),
		Attachment:   attachment.NewService(repos.Attachment, repos.MaintenanceRequest, minioClient, cfg),
		Notification: notifSvc,
		Audit:        auditSvc,
		Dashboard:    dashboard.NewService(repos.MaintenanceRequest, repos.Building, repos.Apartment, c),
		Email:        emailSvc,
	}
}
