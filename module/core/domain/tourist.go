package domain

import "time"

// Experience levels recognised by the safety feature assembler. Unknown
// labels fall back to an intermediate risk weight.
const (
	ExperienceExpert       = "expert"
	ExperienceIntermediate = "intermediate"
	ExperienceBeginner     = "beginner"
)

// Profile carries the per-tourist fields consumed by the safety scorer.
// Construct with DefaultProfile and overwrite whatever the request supplied,
// so defaulting happens once at the boundary rather than inside scoring.
type Profile struct {
	LocationRisk    float64
	GroupSize       int
	ExperienceLevel string
	HasItinerary    bool
	Age             float64
	HealthScore     float64
}

// DefaultProfile returns the documented substitutes for missing profile
// fields.
func DefaultProfile() Profile {
	return Profile{
		LocationRisk:    5,
		GroupSize:       1,
		ExperienceLevel: ExperienceBeginner,
		HasItinerary:    false,
		Age:             30,
		HealthScore:     8,
	}
}

// Environment carries the environmental readings that feed the incident
// predictor. Nil pointers mean "not supplied" and take the documented
// defaults at feature assembly.
type Environment struct {
	WeatherScore    *float64
	VisibilityScore *float64
}

// TouristSnapshot is the sole input to one assessment run. It is
// request-scoped and never persisted; optional fields are pointers.
type TouristSnapshot struct {
	TouristID   string
	Location    *LatLng
	LocationID  *int
	Timestamp   time.Time
	Profile     Profile
	Environment Environment
}
