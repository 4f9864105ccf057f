package domain

import (
	"time"

	"github.com/google/uuid"
)

type Apartment struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Number       string     `json:"number" db:"number"`
	Code         string     `json:"code" db:"code"`
	Type         string     `json:"type" db:"type"`
	TotalAmount  float64    `json:"totalAmount" db:"total_amount"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	BuildingID   uuid.UUID  `json:"buildingId" db:"building_id"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty" db:"department_id"`
	CreatedBy    uuid.UUID  `json:"createdBy" db:"created_by"`
	UpdatedBy    *uuid.UUID `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`

	Building   *Building   `json:"building,omitempty" db:"-"`
	Department *Department `json:"department,omitempty" db:"-"`
}

// ApartmentRef is the read-only snapshot a maintenance request keeps of its
// apartment at creation time. It is not re-validated afterwards.
type ApartmentRef struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	BuildingName   string    `json:"buildingName"`
	DepartmentName string    `json:"departmentName,omitempty"`
	IsActive       bool      `json:"isActive"`
}

func (a *Apartment) Ref() ApartmentRef {
	ref := ApartmentRef{
		ID:       a.ID,
		Number:   a.Number,
		IsActive: a.IsActive,
	}
	if a.Building != nil {
		ref.BuildingName = a.Building.Name
	}
	if a.Department != nil {
		ref.DepartmentName = a.Department.Name
	}
	return ref
}

type CreateApartmentInput struct {
	Number       string     `json:"number" validate:"required"`
	Code         string     `json:"code" validate:"required"`
	Type         string     `json:"type" validate:"required"`
	TotalAmount  float64    `json:"totalAmount" validate:"omitempty,gte=0"`
	BuildingID   uuid.UUID  `json:"buildingId" validate:"required"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	IsActive     *bool      `json:"isActive,omitempty"`
}

type UpdateApartmentInput struct {
	Number       *string     `json:"number,omitempty"`
	Code         *string     `json:"code,omitempty"`
	Type         *string     `json:"type,omitempty"`
	TotalAmount  *float64    `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
	BuildingID   *uuid.UUID  `json:"buildingId,omitempty"`
	DepartmentID **uuid.UUID `json:"departmentId,omitempty"`
	IsActive     *bool       `json:"isActive,omitempty"`
}
