package domain

import "errors"

var (
	ErrMissingClassification = errors.New("classification type is required")
	ErrInvalidClassification = errors.New("unknown classification type")
	ErrNonPositiveCost       = errors.New("cost must be greater than zero")
	ErrNonPositiveQuantity   = errors.New("quantity must be greater than zero")
	ErrNoCostItems           = errors.New("at least one cost item is required")

	ErrInvalidMaintenanceType = errors.New("unknown maintenance type")
	ErrInvalidStatus          = errors.New("unknown request status")
	ErrInvalidApprovalType    = errors.New("approval type must be manager or supervisor")
	ErrAlreadyApproved        = errors.New("approval has already been granted for this role")

	ErrRequestNotFound    = errors.New("maintenance request not found")
	ErrApartmentNotFound  = errors.New("apartment not found")
	ErrApartmentInactive  = errors.New("apartment is not active")
	ErrBuildingNotFound   = errors.New("building not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)
