package domain

import "time"

const (
	EFIRStatusRegistered = "REGISTERED"

	IncidentMissingPerson  = "MISSING_PERSON"
	IncidentEmergencyAlert = "EMERGENCY_ALERT"
	IncidentSMSEmergency   = "SMS_EMERGENCY"

	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// IncidentReport is the raw input an E-FIR is generated from.
type IncidentReport struct {
	TouristID        string            `json:"tourist_id"`
	TouristName      string            `json:"tourist_name"`
	Nationality      string            `json:"nationality"`
	PassportNumber   string            `json:"passport_number"`
	ContactNumber    string            `json:"contact_number"`
	EmergencyContact map[string]string `json:"emergency_contact"`
	IncidentType     string            `json:"incident_type"`
	Severity         string            `json:"severity"`
	LastActivity     string            `json:"last_activity"`
	LastSeenTime     string            `json:"last_seen_time"`
	Circumstances    string            `json:"circumstances"`
	LastLocation     *LatLng           `json:"last_location"`
	IncidentArea     string            `json:"incident_area"`
	NearbyLandmarks  []string          `json:"nearby_landmarks"`
}

type ComplainantDetails struct {
	TouristID        string            `json:"tourist_id"`
	Name             string            `json:"name"`
	Nationality      string            `json:"nationality"`
	PassportNumber   string            `json:"passport_number"`
	ContactNumber    string            `json:"contact_number"`
	EmergencyContact map[string]string `json:"emergency_contact"`
}

type IncidentDetails struct {
	Type              string `json:"type"`
	Description       string `json:"description"`
	Severity          string `json:"severity"`
	LastKnownActivity string `json:"last_known_activity"`
	Circumstances     string `json:"circumstances"`
}

type LocationDetails struct {
	LastKnownLocation *LatLng  `json:"last_known_location"`
	IncidentArea      string   `json:"incident_area"`
	NearbyLandmarks   []string `json:"nearby_landmarks"`
}

// EFIR is an electronic first information report registered for a tourist
// incident.
type EFIR struct {
	ID                   string             `json:"id"`
	ComplaintNumber      string             `json:"complaint_number"`
	DateTime             time.Time          `json:"date_time"`
	Complainant          ComplainantDetails `json:"complainant_details"`
	Incident             IncidentDetails    `json:"incident_details"`
	Location             LocationDetails    `json:"location_details"`
	InvestigatingOfficer string             `json:"investigating_officer"`
	Status               string             `json:"status"`
}
