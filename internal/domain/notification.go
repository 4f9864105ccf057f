package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"userId" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	ReadAt    *time.Time       `json:"readAt,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}

type NotificationType string

const (
	NotifRequestCreated   NotificationType = "REQUEST_CREATED"
	NotifRequestApproved  NotificationType = "REQUEST_APPROVED"
	NotifRequestRejected  NotificationType = "REQUEST_REJECTED"
	NotifStatusChanged    NotificationType = "STATUS_CHANGED"
	NotifActionRecorded   NotificationType = "ACTION_RECORDED"
)
