package service

import (
	"time"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

// Placeholder scores pending real weather and event feeds.
const (
	flowWeatherScore = 7
	flowEventScore   = 5
)

// TimeOfDayRisk is 8 during night hours (before 06:00 or after 22:00) and 3
// otherwise.
func TimeOfDayRisk(now time.Time) float64 {
	h := now.Hour()
	if h < 6 || h > 22 {
		return 8
	}
	return 3
}

// SafetyFeatures maps a tourist profile into the fixed-order vector consumed
// by the safety scorer:
//
//	[location_risk, time_of_day_risk, group_risk, experience_risk,
//	 planning_risk, age, health_score]
//
// Pure: the wall clock is an explicit argument.
func SafetyFeatures(p domain.Profile, now time.Time) []float64 {
	groupRisk := 3.0
	if p.GroupSize == 1 {
		groupRisk = 8
	}

	expRisk := 5.0
	switch p.ExperienceLevel {
	case domain.ExperienceExpert:
		expRisk = 2
	case domain.ExperienceIntermediate:
		expRisk = 5
	case domain.ExperienceBeginner:
		expRisk = 8
	}

	planningRisk := 7.0
	if p.HasItinerary {
		planningRisk = 3
	}

	return []float64{
		p.LocationRisk,
		TimeOfDayRisk(now),
		groupRisk,
		expRisk,
		planningRisk,
		p.Age,
		p.HealthScore,
	}
}

// FlowFeatures maps a location and timestamp into the vector consumed by the
// flow scorer:
//
//	[hour, day, month, weekday, iso_week, day_of_year,
//	 location_id, weather_score, event_score]
func FlowFeatures(locationID int, ts time.Time) []float64 {
	_, week := ts.ISOWeek()
	return []float64{
		float64(ts.Hour()),
		float64(ts.Day()),
		float64(int(ts.Month())),
		float64(int(ts.Weekday())),
		float64(week),
		float64(ts.YearDay()),
		float64(locationID),
		flowWeatherScore,
		flowEventScore,
	}
}

// IncidentInput gathers the cross-domain signals the incident predictor
// consumes. Nil fields take the documented defaults.
type IncidentInput struct {
	LocationRisk    *float64 // default 5
	TouristDensity  *float64 // default 50
	SafetyScore     *float64 // default 5
	ExperienceScore *float64 // default 5
	WeatherScore    *float64 // default 5
	TimeOfDayRisk   *float64 // default 5
	VisibilityScore *float64 // default 5
}

// IncidentFeatures maps an IncidentInput into the fixed-order vector
// consumed by the incident scorer:
//
//	[location_risk_score, tourist_density, safety_score, experience_score,
//	 weather_score, time_of_day_risk, visibility_score]
func IncidentFeatures(in IncidentInput) []float64 {
	return []float64{
		orDefault(in.LocationRisk, 5),
		orDefault(in.TouristDensity, 50),
		orDefault(in.SafetyScore, 5),
		orDefault(in.ExperienceScore, 5),
		orDefault(in.WeatherScore, 5),
		orDefault(in.TimeOfDayRisk, 5),
		orDefault(in.VisibilityScore, 5),
	}
}

func orDefault(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// Float is a convenience for building optional feature inputs.
func Float(v float64) *float64 { return &v }
