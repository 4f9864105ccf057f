package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/pkg/cache"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/audit"
	"amlak-backend/internal/service/notification"
)

// ErrNotPermitted is returned when the acting user lacks the capability an
// approval slot requires.
var ErrNotPermitted = errors.New("user is not permitted to review this approval")

const (
	requestCacheKey = "maintenance:request:%s"
	requestCacheTTL = 5 * time.Minute
)

type Service interface {
	Create(ctx context.Context, input domain.CreateMaintenanceRequestInput, actor *domain.User, ip, ua *string) (*domain.MaintenanceRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, status *domain.RequestStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.MaintenanceRequest], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input domain.UpdateStatusInput, actor *domain.User, ip, ua *string) (*domain.MaintenanceRequest, error)
	SubmitApproval(ctx context.Context, id uuid.UUID, input domain.SubmitApprovalInput, actor *domain.User, ip, ua *string) (*domain.MaintenanceRequest, error)
	AddAction(ctx context.Context, id uuid.UUID, input domain.AddActionInput, actor *domain.User) (*domain.Action, error)
}

type service struct {
	requestRepo   repository.MaintenanceRequestRepository
	apartmentRepo repository.ApartmentRepository
	buildingRepo  repository.BuildingRepository
	userRepo      repository.UserRepository
	auditSvc      audit.Service
	notifSvc      notification.Service
	cache         cache.Cache
}

func NewService(
	requestRepo repository.MaintenanceRequestRepository,
	apartmentRepo repository.ApartmentRepository,
	buildingRepo repository.BuildingRepository,
	userRepo repository.UserRepository,
	auditSvc audit.Service,
	notifSvc notification.Service,
	cache cache.Cache,
) Service {
	return &service{
		requestRepo:   requestRepo,
		apartmentRepo: apartmentRepo,
		buildingRepo:  buildingRepo,
		userRepo:      userRepo,
		auditSvc:      auditSvc,
		notifSvc:      notifSvc,
		cache:         cache,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateMaintenanceRequestInput, actor *domain.User, ip, ua *string) (*domain.MaintenanceRequest, error) {
	if !input.MaintenanceType.IsValid() {
		return nil, domain.ErrInvalidMaintenanceType
	}
	if len(input.CostItems) == 0 {
		return nil, domain.ErrNoCostItems
	}

	ledger := domain.NewCostLedger()
	for _, item := range input.CostItems {
		if _, err := ledger.AddItem(item.ClassificationType, item.Cost, item.Quantity); err != nil {
			return nil, err
		}
	}

	apartment, err := s.apartmentRepo.GetByIDWithRefs(ctx, input.ApartmentID)
	if err != nil {
		return nil, err
	}
	if apartment == nil {
		return nil, domain.ErrApartmentNotFound
	}
	if !apartment.IsActive {
		return nil, domain.ErrApartmentInactive
	}

	snapshot, err := json.Marshal(apartment.Ref())
	if err != nil {
		return nil, err
	}

	request := &domain.MaintenanceRequest{
		ID:                uuid.New(),
		ApartmentID:       apartment.ID,
		ApartmentSnapshot: snapshot,
		MaintenanceType:   input.MaintenanceType,
		Notes:             input.Notes,
		CostItems:         ledger.Items(),
		TotalCost:         ledger.Total(),
		Status:            domain.StatusPending,
		CreatedBy:         actor.ID,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	if err := s.buildingRepo.AddMaintenanceCost(ctx, apartment.BuildingID, request.TotalCost); err != nil {
		log.Printf("failed to roll maintenance cost into building %s: %v", apartment.BuildingID, err)
	}

	ref := actor.Ref()
	request.Requester = &ref

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "CREATE",
		EntityType: "maintenance_request",
		EntityID:   request.ID,
		NewValue:   request,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	go func() {
		if err := s.notifSvc.NotifyRequestCreated(context.Background(), request, actor); err != nil {
			log.Printf("failed to notify reviewers about request %s: %v", request.ID, err)
		}
	}()

	return request, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error) {
	key := fmt.Sprintf(requestCacheKey, id)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var request domain.MaintenanceRequest
		if json.Unmarshal(cached, &request) == nil {
			return &request, nil
		}
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}

	s.enrichRequester(ctx, request)

	if data, err := json.Marshal(request); err == nil {
		_ = s.cache.Set(ctx, key, data, requestCacheTTL)
	}

	return request, nil
}

func (s *service) List(ctx context.Context, status *domain.RequestStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.MaintenanceRequest], error) {
	if status != nil && !status.IsValid() {
		return domain.PaginatedResponse[domain.MaintenanceRequest]{}, domain.ErrInvalidStatus
	}

	requests, total, err := s.requestRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.MaintenanceRequest]{}, err
	}

	refs := make(map[uuid.UUID]*domain.UserRef)
	for i := range requests {
		createdBy := requests[i].CreatedBy
		ref, ok := refs[createdBy]
		if !ok {
			if user, err := s.userRepo.GetByID(ctx, createdBy); err == nil && user != nil {
				r := user.Ref()
				ref = &r
			}
			refs[createdBy] = ref
		}
		requests[i].Requester = ref
	}

	return domain.NewPaginatedResponse(requests, params.Page, params.PageSize, total), nil
}

// UpdateStatus moves the request to the target status. A status move is not
// recorded in the action log; only approval decisions are.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input domain.UpdateStatusInput, actor *domain.User, ip, ua *string) (*domain.MaintenanceRequest, error) {
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}

	from := request.Status
	if !domain.IsTransitionAllowed(from, input.Status) {
		return nil, domain.ErrInvalidStatus
	}

	if from != input.Status {
		if err := s.requestRepo.UpdateStatus(ctx, id, input.Status); err != nil {
			return nil, err
		}
		request.Status = input.Status

		s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
			UserID:     actor.ID,
			Action:     "UPDATE_STATUS",
			EntityType: "maintenance_request",
			EntityID:   id,
			OldValue:   map[string]string{"status": string(from)},
			NewValue:   map[string]string{"status": string(input.Status)},
			IPAddress:  ip,
			UserAgent:  ua,
		})

		go func() {
			if err := s.notifSvc.NotifyStatusChanged(context.Background(), request, from, input.Status, actor); err != nil {
				log.Printf("failed to notify status change for request %s: %v", id, err)
			}
		}()
	}

	s.invalidate(ctx, id)
	s.enrichRequester(ctx, request)

	return request, nil
}

func (s *service) SubmitApproval(ctx context.Context, id uuid.UUID, input domain.SubmitApprovalInput, actor *domain.User, ip, ua *string) (*domain.MaintenanceRequest, error) {
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidApprovalType
	}
	if !actor.Can(input.Type.RequiredCapability()) {
		return nil, ErrNotPermitted
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}

	slot := request.ApprovalFor(input.Type)
	before := *slot

	var description string
	if input.IsApproved {
		if err := slot.Approve(actor.Ref(), input.Notes, time.Now()); err != nil {
			return nil, err
		}
		description = fmt.Sprintf("%s approval granted by %s", input.Type, actor.Name)
	} else {
		if err := slot.Reject(actor.Ref(), input.Notes); err != nil {
			return nil, err
		}
		description = fmt.Sprintf("%s approval rejected by %s", input.Type, actor.Name)
		if input.Notes != nil && *input.Notes != "" {
			description = fmt.Sprintf("%s: %s", description, *input.Notes)
		}
	}

	if err := s.requestRepo.UpdateApproval(ctx, id, input.Type, slot); err != nil {
		return nil, err
	}

	// Every approval decision, approve or reject, lands in the action log.
	action := &domain.Action{
		ID:          uuid.New(),
		RequestID:   id,
		User:        actor.Ref(),
		Description: description,
	}
	if err := s.requestRepo.AddAction(ctx, action); err != nil {
		return nil, err
	}
	request.Actions = append(request.Actions, *action)

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "SUBMIT_APPROVAL",
		EntityType: "maintenance_request",
		EntityID:   id,
		OldValue:   before,
		NewValue:   slot,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	go func() {
		if err := s.notifSvc.NotifyApprovalDecision(context.Background(), request, input.Type, input.IsApproved, actor); err != nil {
			log.Printf("failed to notify approval decision for request %s: %v", id, err)
		}
	}()

	s.invalidate(ctx, id)
	s.enrichRequester(ctx, request)

	return request, nil
}

func (s *service) AddAction(ctx context.Context, id uuid.UUID, input domain.AddActionInput, actor *domain.User) (*domain.Action, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}

	action := &domain.Action{
		ID:          uuid.New(),
		RequestID:   id,
		User:        actor.Ref(),
		Description: input.Description,
	}
	if err := s.requestRepo.AddAction(ctx, action); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return action, nil
}

func (s *service) enrichRequester(ctx context.Context, request *domain.MaintenanceRequest) {
	if request.Requester != nil {
		return
	}
	if user, err := s.userRepo.GetByID(ctx, request.CreatedBy); err == nil && user != nil {
		ref := user.Ref()
		request.Requester = &ref
	}
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, fmt.Sprintf(requestCacheKey, id)); err != nil {
		log.Printf("failed to invalidate cache for request %s: %v", id, err)
	}
}
