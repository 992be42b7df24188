package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database"
	"github.com/samartharora25/SafeRove-Final/module/core/metrics"
)

// alertRiskThreshold is the geofence risk level above which a breach alert
// is generated.
const alertRiskThreshold = 7

// Aggregator runs the risk assessment pipeline for one tourist update:
// safety score, geofence check, conditional flow and incident estimates,
// alert emission. Missing optional input degrades to documented defaults;
// no step fails the request.
type Aggregator struct {
	zones    *ZoneIndex
	safety   *SafetyScorer
	flow     *FlowScorer
	incident *IncidentScorer
	emitter  *AlertEmitter
	repo     database.AssessmentRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewAggregator(
	zones *ZoneIndex,
	safety *SafetyScorer,
	flow *FlowScorer,
	incident *IncidentScorer,
	emitter *AlertEmitter,
	repo database.AssessmentRepository,
	log zerolog.Logger,
) *Aggregator {
	return &Aggregator{
		zones:    zones,
		safety:   safety,
		flow:     flow,
		incident: incident,
		emitter:  emitter,
		repo:     repo,
		log:      log,
		now:      time.Now,
	}
}

// Assess executes the fixed pipeline sequence and returns the immutable
// assessment. TouristFlow and IncidentProbability are set only when the
// snapshot carries a location id.
func (a *Aggregator) Assess(ctx context.Context, snap domain.TouristSnapshot) domain.RiskAssessment {
	now := a.now()
	ts := snap.Timestamp
	if ts.IsZero() {
		ts = now
	}

	safetyScore := a.safety.Predict(SafetyFeatures(snap.Profile, now))

	res := domain.RiskAssessment{
		TouristID:       snap.TouristID,
		Timestamp:       now,
		SafetyScore:     safetyScore,
		Recommendations: []string{},
	}

	var locationRisk *int
	if snap.Location != nil {
		risk := a.zones.CheckRisk(snap.Location.Lat, snap.Location.Lng)
		locationRisk = &risk

		if risk > alertRiskThreshold {
			alert := domain.Alert{
				ID:        uuid.NewString(),
				TouristID: snap.TouristID,
				Timestamp: now,
				Location:  *snap.Location,
				RiskLevel: risk,
				AlertType: domain.AlertGeofenceBreach,
			}
			a.emitter.Emit(ctx, &alert)
			res.Alerts = append(res.Alerts, alert)
		}
	}

	if snap.LocationID != nil {
		flowEstimate := a.flow.Predict(FlowFeatures(*snap.LocationID, ts))
		res.TouristFlow = &flowEstimate

		in := IncidentInput{
			TouristDensity:  Float(float64(flowEstimate)),
			SafetyScore:     Float(float64(safetyScore)),
			TimeOfDayRisk:   Float(TimeOfDayRisk(now)),
			WeatherScore:    snap.Environment.WeatherScore,
			VisibilityScore: snap.Environment.VisibilityScore,
		}
		if locationRisk != nil {
			in.LocationRisk = Float(float64(*locationRisk))
		}
		if in.VisibilityScore == nil {
			in.VisibilityScore = Float(7)
		}

		prob := a.incident.Predict(IncidentFeatures(in))
		res.IncidentProbability = &prob
	}

	metrics.AssessmentsTotal.Inc()
	a.record(ctx, &res)
	return res
}

// record persists the assessment and its alerts. Persistence is not part of
// the pipeline contract: failures are logged and the result is returned
// regardless.
func (a *Aggregator) record(ctx context.Context, res *domain.RiskAssessment) {
	if a.repo == nil {
		return
	}
	if err := a.repo.InsertAssessment(ctx, res); err != nil {
		a.log.Error().Err(err).Str("tourist_id", res.TouristID).Msg("persist assessment failed")
	}
	for i := range res.Alerts {
		if err := a.repo.InsertAlert(ctx, &res.Alerts[i]); err != nil {
			a.log.Error().Err(err).Str("alert_id", res.Alerts[i].ID).Msg("persist alert failed")
		}
	}
}
