package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"amlak-backend/internal/pkg/cache"
	"amlak-backend/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 1 * time.Minute
)

type Stats struct {
	TotalRequests        int64   `json:"totalRequests"`
	PendingRequests      int64   `json:"pendingRequests"`
	TotalMaintenanceCost float64 `json:"totalMaintenanceCost"`
	TotalBuildings       int64   `json:"totalBuildings"`
	TotalApartments      int64   `json:"totalApartments"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	requestRepo   repository.MaintenanceRequestRepository
	buildingRepo  repository.BuildingRepository
	apartmentRepo repository.ApartmentRepository
	cache         cache.Cache
}

func NewService(
	requestRepo repository.MaintenanceRequestRepository,
	buildingRepo repository.BuildingRepository,
	apartmentRepo repository.ApartmentRepository,
	c cache.Cache,
) Service {
	return &service{
		requestRepo:   requestRepo,
		buildingRepo:  buildingRepo,
		apartmentRepo: apartmentRepo,
		cache:         c,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil {
		var stats Stats
		if json.Unmarshal(cached, &stats) == nil {
			return &stats, nil
		}
	}

	stats := &Stats{}
	var err error

	if stats.TotalRequests, err = s.requestRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requestRepo.CountPending(ctx); err != nil {
		return nil, err
	}
	if stats.TotalMaintenanceCost, err = s.requestRepo.SumTotalCost(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBuildings, err = s.buildingRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalApartments, err = s.apartmentRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, data, statsCacheTTL)
	}

	return stats, nil
}
