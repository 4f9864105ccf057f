package domain

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Code      string     `json:"code" db:"code"`
	CreatedBy uuid.UUID  `json:"createdBy" db:"created_by"`
	UpdatedBy *uuid.UUID `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Creator *UserRef `json:"creator,omitempty" db:"-"`
	Updater *UserRef `json:"updater,omitempty" db:"-"`
}

type CreateDepartmentInput struct {
	Name string `json:"name" validate:"required,min=2"`
	Code string `json:"code" validate:"required"`
}

type UpdateDepartmentInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Code *string `json:"code,omitempty"`
}
