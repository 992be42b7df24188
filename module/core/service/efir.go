package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database"
)

// EFIRService registers electronic first information reports for tourist
// incidents.
type EFIRService struct {
	repo database.EFIRRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewEFIRService(repo database.EFIRRepository, log zerolog.Logger) *EFIRService {
	return &EFIRService{repo: repo, log: log, now: time.Now}
}

// Create generates and persists an E-FIR from the incident report. A
// persistence failure fails this call only.
func (s *EFIRService) Create(ctx context.Context, rep domain.IncidentReport) (domain.EFIR, error) {
	now := s.now()

	incidentType := rep.IncidentType
	if incidentType == "" {
		incidentType = domain.IncidentMissingPerson
	}
	severity := rep.Severity
	if severity == "" {
		severity = domain.SeverityMedium
	}

	efir := domain.EFIR{
		ID:              uuid.NewString(),
		ComplaintNumber: "EFIR" + now.Format("20060102150405"),
		DateTime:        now,
		Complainant: domain.ComplainantDetails{
			TouristID:        rep.TouristID,
			Name:             rep.TouristName,
			Nationality:      rep.Nationality,
			PassportNumber:   rep.PassportNumber,
			ContactNumber:    rep.ContactNumber,
			EmergencyContact: rep.EmergencyContact,
		},
		Incident: domain.IncidentDetails{
			Type:              incidentType,
			Description:       incidentDescription(incidentType, rep),
			Severity:          severity,
			LastKnownActivity: rep.LastActivity,
			Circumstances:     rep.Circumstances,
		},
		Location: domain.LocationDetails{
			LastKnownLocation: rep.LastLocation,
			IncidentArea:      rep.IncidentArea,
			NearbyLandmarks:   rep.NearbyLandmarks,
		},
		Status: domain.EFIRStatusRegistered,
	}

	if err := s.repo.Insert(ctx, &efir); err != nil {
		return domain.EFIR{}, fmt.Errorf("register efir: %w", err)
	}

	s.log.Info().Str("complaint_number", efir.ComplaintNumber).Str("incident_type", incidentType).Msg("efir registered")
	return efir, nil
}

func incidentDescription(incidentType string, rep domain.IncidentReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tourist reported %s. ", strings.ReplaceAll(strings.ToLower(incidentType), "_", " "))
	if rep.LastSeenTime != "" {
		fmt.Fprintf(&b, "Last seen at %s. ", rep.LastSeenTime)
	}
	if rep.Circumstances != "" {
		b.WriteString(rep.Circumstances)
	}
	return b.String()
}
