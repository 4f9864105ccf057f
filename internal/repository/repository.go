package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User               UserRepository
	Building           BuildingRepository
	Department         DepartmentRepository
	Apartment          ApartmentRepository
	MaintenanceRequest MaintenanceRequestRepository
	Attachment         AttachmentRepository
	AuditLog           AuditLogRepository
	Notification       NotificationRepository
	Session            SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:               NewUserRepository(db),
		Building:           NewBuildingRepository(db),
		Department:         NewDepartmentRepository(db),
		Apartment:          NewApartmentRepository(db),
		MaintenanceRequest: NewMaintenanceRequestRepository(db),
		Attachment:         NewAttachmentRepository(db),
		AuditLog:           NewAuditLogRepository(db),
		Notification:       NewNotificationRepository(db),
		Session:            NewSessionRepository(db),
	}
}
