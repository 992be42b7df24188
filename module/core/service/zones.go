package service

import (
	"context"
	"fmt"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database"
)

// ZoneService keeps the in-memory index authoritative for lookups and
// writes registrations through to Postgres so the index can be rebuilt at
// startup. The index is updated first; lookups never wait on the database.
type ZoneService struct {
	index *ZoneIndex
	repo  database.ZoneRepository
}

func NewZoneService(index *ZoneIndex, repo database.ZoneRepository) *ZoneService {
	return &ZoneService{index: index, repo: repo}
}

func (s *ZoneService) AddZone(ctx context.Context, id string, polygon []domain.LatLng, riskLevel int) error {
	s.index.AddZone(id, polygon, riskLevel)

	zone := domain.RiskZone{ID: id, Polygon: polygon, RiskLevel: riskLevel, Active: true}
	if err := s.repo.Upsert(ctx, &zone); err != nil {
		return fmt.Errorf("persist zone %s: %w", id, err)
	}
	return nil
}

// SetActive returns false when the zone is unknown to the index.
func (s *ZoneService) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	if !s.index.SetActive(id, active) {
		return false, nil
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return true, fmt.Errorf("persist zone %s: %w", id, err)
	}
	return true, nil
}

func (s *ZoneService) CheckRisk(lat, lng float64) int {
	return s.index.CheckRisk(lat, lng)
}

func (s *ZoneService) List() []domain.RiskZone {
	return s.index.Zones()
}
