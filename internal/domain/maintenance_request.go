package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MaintenanceType string

const (
	MaintenanceElectrical MaintenanceType = "electrical"
	MaintenanceMechanical MaintenanceType = "mechanical"
	MaintenancePlumbing   MaintenanceType = "plumbing"
	MaintenanceFinishing  MaintenanceType = "finishing"
	MaintenanceGeneral    MaintenanceType = "maintenance"
	MaintenanceOther      MaintenanceType = "other"
)

var AllMaintenanceTypes = []MaintenanceType{
	MaintenanceElectrical,
	MaintenanceMechanical,
	MaintenancePlumbing,
	MaintenanceFinishing,
	MaintenanceGeneral,
	MaintenanceOther,
}

func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceElectrical, MaintenanceMechanical, MaintenancePlumbing,
		MaintenanceFinishing, MaintenanceGeneral, MaintenanceOther:
		return true
	default:
		return false
	}
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCompleted RequestStatus = "completed"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTransitionAllowed is deliberately permissive: any valid status may move
// to any other, including completed straight from pending. The workflow has
// never enforced an ordering; keeping the rule here means a stricter policy
// can be swapped in without touching call sites.
func IsTransitionAllowed(from, to RequestStatus) bool {
	return from.IsValid() && to.IsValid()
}

type ApprovalType string

const (
	ApprovalManager    ApprovalType = "manager"
	ApprovalSupervisor ApprovalType = "supervisor"
)

func (t ApprovalType) IsValid() bool {
	return t == ApprovalManager || t == ApprovalSupervisor
}

// RequiredCapability maps the approval slot to the role check guarding it.
func (t ApprovalType) RequiredCapability() Capability {
	if t == ApprovalManager {
		return CapApproveManager
	}
	return CapApproveSupervisor
}

// Approval records one role's decision on a request. A rejection only
// stores the reviewer and notes; the slot stays undecided and may be
// re-reviewed. An approval is terminal for that slot.
type Approval struct {
	IsApproved   bool       `json:"isApproved" db:"is_approved"`
	ApprovalDate *time.Time `json:"approvalDate,omitempty" db:"approval_date"`
	Notes        *string    `json:"notes,omitempty" db:"notes"`
	ApproverID   *uuid.UUID `json:"approverId,omitempty" db:"approver_id"`
	ApproverName *string    `json:"approverName,omitempty" db:"approver_name"`
}

func (a *Approval) Approve(approver UserRef, notes *string, now time.Time) error {
	if a.IsApproved {
		return ErrAlreadyApproved
	}
	a.IsApproved = true
	a.ApprovalDate = &now
	a.Notes = notes
	a.ApproverID = &approver.ID
	a.ApproverName = &approver.Name
	return nil
}

func (a *Approval) Reject(approver UserRef, notes *string) error {
	if a.IsApproved {
		return ErrAlreadyApproved
	}
	a.Notes = notes
	a.ApproverID = &approver.ID
	a.ApproverName = &approver.Name
	return nil
}

type Action struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RequestID   uuid.UUID `json:"-" db:"request_id"`
	User        UserRef   `json:"user" db:"user"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"date" db:"created_at"`
}

type MaintenanceRequest struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	ApartmentID         uuid.UUID       `json:"-" db:"apartment_id"`
	ApartmentSnapshot   json.RawMessage `json:"apartment" db:"apartment_snapshot"`
	MaintenanceType     MaintenanceType `json:"maintenanceType" db:"maintenance_type"`
	Notes               *string         `json:"notes,omitempty" db:"notes"`
	CostItems           []CostItem      `json:"costItems" db:"-"`
	TotalCost           float64         `json:"totalCost" db:"total_cost"`
	Status              RequestStatus   `json:"status" db:"status"`
	ManagerApproval     Approval        `json:"managerApproval" db:"manager_approval"`
	SupervisorApproval  Approval        `json:"supervisorApproval" db:"supervisor_approval"`
	Actions             []Action        `json:"actions" db:"-"`
	CreatedBy           uuid.UUID       `json:"createdBy" db:"created_by"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time       `json:"updatedAt" db:"updated_at"`

	Requester *UserRef `json:"requester,omitempty" db:"-"`
}

// ApprovalFor returns the slot for the given approval type. Callers mutate
// the returned pointer and persist the whole request.
func (m *MaintenanceRequest) ApprovalFor(t ApprovalType) *Approval {
	if t == ApprovalManager {
		return &m.ManagerApproval
	}
	return &m.SupervisorApproval
}

type CostItemInput struct {
	ClassificationType ClassificationType `json:"classificationType" validate:"required"`
	Cost               float64            `json:"cost" validate:"required,gt=0"`
	Quantity           int                `json:"quantity" validate:"required,gt=0"`
}

type CreateMaintenanceRequestInput struct {
	ApartmentID     uuid.UUID       `json:"apartment" validate:"required"`
	MaintenanceType MaintenanceType `json:"maintenanceType" validate:"required"`
	Notes           *string         `json:"notes,omitempty" validate:"omitempty,max=1000"`
	CostItems       []CostItemInput `json:"costItems" validate:"required,min=1"`
}

type UpdateStatusInput struct {
	Status RequestStatus `json:"status" validate:"required"`
}

type SubmitApprovalInput struct {
	Type       ApprovalType `json:"type" validate:"required,oneof=manager supervisor"`
	IsApproved bool         `json:"isApproved"`
	Notes      *string      `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type AddActionInput struct {
	Description string `json:"description" validate:"required,max=500"`
}
