package domain

import (
	"time"

	"github.com/google/uuid"
)

type Building struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Code             string     `json:"code" db:"code"`
	LastRecordedCost float64    `json:"lastRecordedCost" db:"last_recorded_cost"`
	MaintenanceCost  float64    `json:"maintenanceCost" db:"maintenance_cost"`
	IsActive         bool       `json:"isActive" db:"is_active"`
	CreatedBy        uuid.UUID  `json:"createdBy" db:"created_by"`
	UpdatedBy        *uuid.UUID `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt        *time.Time `json:"-" db:"deleted_at"`

	Creator *UserRef `json:"creator,omitempty" db:"-"`
	Updater *UserRef `json:"updater,omitempty" db:"-"`
}

type CreateBuildingInput struct {
	Name             string  `json:"name" validate:"required,min=2"`
	Code             string  `json:"code" validate:"required"`
	LastRecordedCost float64 `json:"lastRecordedCost" validate:"omitempty,gte=0"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

type UpdateBuildingInput struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Code             *string  `json:"code,omitempty"`
	LastRecordedCost *float64 `json:"lastRecordedCost,omitempty" validate:"omitempty,gte=0"`
	IsActive         *bool    `json:"isActive,omitempty"`
}
