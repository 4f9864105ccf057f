package unit_test

import (
	"context"
	"testing"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/service/audit"
	"amlak-backend/internal/service/maintenance"
	"amlak-backend/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maintenanceFixture struct {
	requestRepo   *mocks.MaintenanceRequestRepository
	apartmentRepo *mocks.ApartmentRepository
	buildingRepo  *mocks.BuildingRepository
	userRepo      *mocks.UserRepository
	auditRepo     *mocks.AuditLogRepository
	notifSvc      *mocks.NotificationService
	svc           maintenance.Service
}

func newMaintenanceFixture() *maintenanceFixture {
	f := &maintenanceFixture{
		requestRepo:   new(mocks.MaintenanceRequestRepository),
		apartmentRepo: new(mocks.ApartmentRepository),
		buildingRepo:  new(mocks.BuildingRepository),
		userRepo:      new(mocks.UserRepository),
		auditRepo:     new(mocks.AuditLogRepository),
		notifSvc:      new(mocks.NotificationService),
	}
	f.svc = maintenance.NewService(
		f.requestRepo, f.apartmentRepo, f.buildingRepo, f.userRepo,
		audit.NewService(f.auditRepo), f.notifSvc, mocks.NewMemoryCache(),
	)
	return f
}

func activeApartment(buildingID uuid.UUID) *domain.Apartment {
	return &domain.Apartment{
		ID:         uuid.New(),
		Number:     "A-12",
		Code:       "APT-012",
		IsActive:   true,
		BuildingID: buildingID,
		Building:   &domain.Building{ID: buildingID, Name: "North Tower"},
	}
}

func managerUser() *domain.User {
	return &domain.User{ID: uuid.New(), Name: "Layla Hassan", Role: domain.RoleManager, IsActive: true}
}

func TestMaintenanceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newMaintenanceFixture()
		buildingID := uuid.New()
		apartment := activeApartment(buildingID)
		actor := managerUser()

		input := domain.CreateMaintenanceRequestInput{
			ApartmentID:     apartment.ID,
			MaintenanceType: domain.MaintenancePlumbing,
			Notes:           stringPtr("leak under the sink"),
			CostItems: []domain.CostItemInput{
				{ClassificationType: domain.ClassificationLabor, Cost: 200, Quantity: 2},
				{ClassificationType: domain.ClassificationMaterials, Cost: 80, Quantity: 5},
			},
		}

		f.apartmentRepo.On("GetByIDWithRefs", ctx, apartment.ID).Return(apartment, nil).Once()
		f.requestRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.MaintenanceRequest) bool {
			return r.Status == domain.StatusPending &&
				r.TotalCost == 800 &&
				len(r.CostItems) == 2 &&
				r.CreatedBy == actor.ID
		})).Return(nil).Once()
		f.buildingRepo.On("AddMaintenanceCost", ctx, buildingID, 800.0).Return(nil).Once()
		f.auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "CREATE" && log.EntityType == "maintenance_request"
		})).Return(nil).Once()
		f.notifSvc.On("NotifyRequestCreated", mock.Anything, mock.Anything, actor).Return(nil).Maybe()

		request, err := f.svc.Create(ctx, input, actor, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, request.Status)
		assert.Equal(t, 800.0, request.TotalCost)
		assert.False(t, request.ManagerApproval.IsApproved)
		assert.False(t, request.SupervisorApproval.IsApproved)
		require.NotNil(t, request.Requester)
		assert.Equal(t, actor.ID, request.Requester.ID)

		f.requestRepo.AssertExpectations(t)
		f.buildingRepo.AssertExpectations(t)
	})

	t.Run("NoCostItems", func(t *testing.T) {
		f := newMaintenanceFixture()

		_, err := f.svc.Create(ctx, domain.CreateMaintenanceRequestInput{
			ApartmentID:     uuid.New(),
			MaintenanceType: domain.MaintenanceElectrical,
		}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrNoCostItems)
		f.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidCostItem", func(t *testing.T) {
		f := newMaintenanceFixture()

		_, err := f.svc.Create(ctx, domain.CreateMaintenanceRequestInput{
			ApartmentID:     uuid.New(),
			MaintenanceType: domain.MaintenanceElectrical,
			CostItems: []domain.CostItemInput{
				{ClassificationType: domain.ClassificationLabor, Cost: 100, Quantity: 0},
			},
		}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	})

	t.Run("UnknownMaintenanceType", func(t *testing.T) {
		f := newMaintenanceFixture()

		_, err := f.svc.Create(ctx, domain.CreateMaintenanceRequestInput{
			ApartmentID:     uuid.New(),
			MaintenanceType: "landscaping",
			CostItems: []domain.CostItemInput{
				{ClassificationType: domain.ClassificationLabor, Cost: 100, Quantity: 1},
			},
		}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidMaintenanceType)
	})

	t.Run("InactiveApartment", func(t *testing.T) {
		f := newMaintenanceFixture()
		apartment := activeApartment(uuid.New())
		apartment.IsActive = false

		f.apartmentRepo.On("GetByIDWithRefs", ctx, apartment.ID).Return(apartment, nil).Once()

		_, err := f.svc.Create(ctx, domain.CreateMaintenanceRequestInput{
			ApartmentID:     apartment.ID,
			MaintenanceType: domain.MaintenanceGeneral,
			CostItems: []domain.CostItemInput{
				{ClassificationType: domain.ClassificationLabor, Cost: 100, Quantity: 1},
			},
		}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrApartmentInactive)
	})
}

func TestMaintenanceService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("StatusMoveDoesNotTouchActionLog", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := managerUser()
		requestID := uuid.New()
		existing := &domain.MaintenanceRequest{ID: requestID, Status: domain.StatusPending, CreatedBy: actor.ID}

		f.requestRepo.On("GetByID", ctx, requestID).Return(existing, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID, domain.StatusCompleted).Return(nil).Once()
		f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil).Maybe()
		f.notifSvc.On("NotifyStatusChanged", mock.Anything, mock.Anything, domain.StatusPending, domain.StatusCompleted, actor).Return(nil).Maybe()

		request, err := f.svc.UpdateStatus(ctx, requestID, domain.UpdateStatusInput{Status: domain.StatusCompleted}, actor, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, request.Status)
		f.requestRepo.AssertNotCalled(t, "AddAction", mock.Anything, mock.Anything)
	})

	t.Run("SameStatusIsNoOp", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := managerUser()
		requestID := uuid.New()
		existing := &domain.MaintenanceRequest{ID: requestID, Status: domain.StatusPending, CreatedBy: actor.ID}

		f.requestRepo.On("GetByID", ctx, requestID).Return(existing, nil).Once()
		f.userRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil).Maybe()

		_, err := f.svc.UpdateStatus(ctx, requestID, domain.UpdateStatusInput{Status: domain.StatusPending}, actor, nil, nil)

		require.NoError(t, err)
		f.requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		f := newMaintenanceFixture()

		_, err := f.svc.UpdateStatus(ctx, uuid.New(), domain.UpdateStatusInput{Status: "archived"}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("RequestMissing", func(t *testing.T) {
		f := newMaintenanceFixture()
		requestID := uuid.New()

		f.requestRepo.On("GetByID", ctx, requestID).Return(nil, nil).Once()

		_, err := f.svc.UpdateStatus(ctx, requestID, domain.UpdateStatusInput{Status: domain.StatusApproved}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}

func TestMaintenanceService_SubmitApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("ManagerApproves", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := managerUser()
		requestID := uuid.New()
		existing := &domain.MaintenanceRequest{ID: requestID, Status: domain.StatusPending, CreatedBy: uuid.New()}

		f.requestRepo.On("GetByID", ctx, requestID).Return(existing, nil).Once()
		f.requestRepo.On("UpdateApproval", ctx, requestID, domain.ApprovalManager, mock.MatchedBy(func(a *domain.Approval) bool {
			return a.IsApproved && a.ApprovalDate != nil && *a.ApproverID == actor.ID
		})).Return(nil).Once()
		f.requestRepo.On("AddAction", ctx, mock.MatchedBy(func(a *domain.Action) bool {
			return a.RequestID == requestID && a.User.ID == actor.ID
		})).Return(nil).Once()
		f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", mock.Anything, existing.CreatedBy).Return(nil, nil).Maybe()
		f.notifSvc.On("NotifyApprovalDecision", mock.Anything, mock.Anything, domain.ApprovalManager, true, actor).Return(nil).Maybe()

		request, err := f.svc.SubmitApproval(ctx, requestID, domain.SubmitApprovalInput{
			Type:       domain.ApprovalManager,
			IsApproved: true,
		}, actor, nil, nil)

		require.NoError(t, err)
		assert.True(t, request.ManagerApproval.IsApproved)
		assert.False(t, request.SupervisorApproval.IsApproved)
		assert.Len(t, request.Actions, 1)

		f.requestRepo.AssertExpectations(t)
	})

	t.Run("RejectLeavesSlotUndecided", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := &domain.User{ID: uuid.New(), Name: "Omar Saleh", Role: domain.RoleSupervisor, IsActive: true}
		requestID := uuid.New()
		existing := &domain.MaintenanceRequest{ID: requestID, Status: domain.StatusPending, CreatedBy: uuid.New()}

		f.requestRepo.On("GetByID", ctx, requestID).Return(existing, nil).Once()
		f.requestRepo.On("UpdateApproval", ctx, requestID, domain.ApprovalSupervisor, mock.MatchedBy(func(a *domain.Approval) bool {
			return !a.IsApproved && a.Notes != nil && *a.Notes == "quantities look wrong"
		})).Return(nil).Once()
		f.requestRepo.On("AddAction", ctx, mock.Anything).Return(nil).Once()
		f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", mock.Anything, existing.CreatedBy).Return(nil, nil).Maybe()
		f.notifSvc.On("NotifyApprovalDecision", mock.Anything, mock.Anything, domain.ApprovalSupervisor, false, actor).Return(nil).Maybe()

		request, err := f.svc.SubmitApproval(ctx, requestID, domain.SubmitApprovalInput{
			Type:       domain.ApprovalSupervisor,
			IsApproved: false,
			Notes:      stringPtr("quantities look wrong"),
		}, actor, nil, nil)

		require.NoError(t, err)
		assert.False(t, request.SupervisorApproval.IsApproved)
		assert.Equal(t, domain.StatusPending, request.Status)
	})

	t.Run("ApproveTwiceConflicts", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := managerUser()
		requestID := uuid.New()
		approvedAlready := &domain.MaintenanceRequest{
			ID:              requestID,
			Status:          domain.StatusPending,
			CreatedBy:       uuid.New(),
			ManagerApproval: domain.Approval{IsApproved: true},
		}

		f.requestRepo.On("GetByID", ctx, requestID).Return(approvedAlready, nil).Once()

		_, err := f.svc.SubmitApproval(ctx, requestID, domain.SubmitApprovalInput{
			Type:       domain.ApprovalManager,
			IsApproved: true,
		}, actor, nil, nil)

		assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
		f.requestRepo.AssertNotCalled(t, "UpdateApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RoleWithoutCapability", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := &domain.User{ID: uuid.New(), Name: "Tenant", Role: domain.RoleUser, IsActive: true}

		_, err := f.svc.SubmitApproval(ctx, uuid.New(), domain.SubmitApprovalInput{
			Type:       domain.ApprovalManager,
			IsApproved: true,
		}, actor, nil, nil)

		assert.ErrorIs(t, err, maintenance.ErrNotPermitted)
		f.requestRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("SupervisorCannotFillManagerSlot", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := &domain.User{ID: uuid.New(), Name: "Omar Saleh", Role: domain.RoleSupervisor, IsActive: true}

		_, err := f.svc.SubmitApproval(ctx, uuid.New(), domain.SubmitApprovalInput{
			Type:       domain.ApprovalManager,
			IsApproved: true,
		}, actor, nil, nil)

		assert.ErrorIs(t, err, maintenance.ErrNotPermitted)
	})

	t.Run("UnknownApprovalType", func(t *testing.T) {
		f := newMaintenanceFixture()

		_, err := f.svc.SubmitApproval(ctx, uuid.New(), domain.SubmitApprovalInput{
			Type:       "owner",
			IsApproved: true,
		}, managerUser(), nil, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidApprovalType)
	})
}

func TestMaintenanceService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("SecondReadServedFromCache", func(t *testing.T) {
		f := newMaintenanceFixture()
		requestID := uuid.New()
		creatorID := uuid.New()
		existing := &domain.MaintenanceRequest{ID: requestID, Status: domain.StatusPending, CreatedBy: creatorID}

		f.requestRepo.On("GetByID", ctx, requestID).Return(existing, nil).Once()
		f.userRepo.On("GetByID", ctx, creatorID).Return(&domain.User{ID: creatorID, Name: "Tenant"}, nil).Once()

		first, err := f.svc.GetByID(ctx, requestID)
		require.NoError(t, err)

		second, err := f.svc.GetByID(ctx, requestID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		f.requestRepo.AssertNumberOfCalls(t, "GetByID", 1)
	})

	t.Run("Missing", func(t *testing.T) {
		f := newMaintenanceFixture()
		requestID := uuid.New()

		f.requestRepo.On("GetByID", ctx, requestID).Return(nil, nil).Once()

		_, err := f.svc.GetByID(ctx, requestID)

		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}

func TestMaintenanceService_AddAction(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsEntry", func(t *testing.T) {
		f := newMaintenanceFixture()
		actor := managerUser()
		requestID := uuid.New()
		existing := &domain.MaintenanceRequest{ID: requestID, Status: domain.StatusApproved, CreatedBy: actor.ID}

		f.requestRepo.On("GetByID", ctx, requestID).Return(existing, nil).Once()
		f.requestRepo.On("AddAction", ctx, mock.MatchedBy(func(a *domain.Action) bool {
			return a.Description == "Contractor visited the site" && a.User.ID == actor.ID
		})).Return(nil).Once()

		action, err := f.svc.AddAction(ctx, requestID, domain.AddActionInput{
			Description: "Contractor visited the site",
		}, actor)

		require.NoError(t, err)
		assert.Equal(t, requestID, action.RequestID)
		f.requestRepo.AssertExpectations(t)
	})

	t.Run("RequestMissing", func(t *testing.T) {
		f := newMaintenanceFixture()
		requestID := uuid.New()

		f.requestRepo.On("GetByID", ctx, requestID).Return(nil, nil).Once()

		_, err := f.svc.AddAction(ctx, requestID, domain.AddActionInput{Description: "x"}, managerUser())

		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}
