package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                     uuid.UUID  `json:"id" db:"id"`
	Name                   string     `json:"name" db:"name"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	Role                   Role       `json:"role" db:"role"`
	PhoneNumber            *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	IsActive               bool       `json:"isActive" db:"is_active"`
	LastLogin              *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	PasswordResetToken     *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt *time.Time `json:"-" db:"password_reset_expires_at"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt              *time.Time `json:"-" db:"deleted_at"`
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleUser       Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupervisor, RoleUser:
		return true
	default:
		return false
	}
}

// Capability names the actions the role checks gate on. The dashboard used to
// compare localized role labels inline; the predicate keeps that logic in one
// place and off the display strings.
type Capability string

const (
	CapManageUsers       Capability = "manage_users"
	CapManageProperties  Capability = "manage_properties"
	CapApproveManager    Capability = "approve_as_manager"
	CapApproveSupervisor Capability = "approve_as_supervisor"
	CapViewAuditLogs     Capability = "view_audit_logs"
)

func HasCapability(role Role, cap Capability) bool {
	switch cap {
	case CapManageUsers, CapViewAuditLogs:
		return role == RoleAdmin || role == RoleManager
	case CapManageProperties:
		return role == RoleAdmin || role == RoleManager || role == RoleSupervisor
	case CapApproveManager:
		return role == RoleAdmin || role == RoleManager
	case CapApproveSupervisor:
		return role == RoleAdmin || role == RoleSupervisor
	default:
		return false
	}
}

func (u *User) Can(cap Capability) bool {
	return HasCapability(u.Role, cap)
}

// UserRef is the embedded {id, name} snapshot other aggregates carry.
type UserRef struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}

type CreateUserInput struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        Role    `json:"role" validate:"omitempty,oneof=admin manager supervisor user"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

type UpdateUserInput struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string  `json:"password,omitempty" validate:"omitempty,min=8"`
	Role        *Role    `json:"role,omitempty" validate:"omitempty,oneof=admin manager supervisor user"`
	PhoneNumber **string `json:"phoneNumber,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
