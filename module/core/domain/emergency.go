package domain

// ExtractedInfo flags the facts an emergency text mentioned.
type ExtractedInfo struct {
	LocationMentioned bool `json:"location_mentioned"`
	InjuryMentioned   bool `json:"injury_mentioned"`
	ContactRequested  bool `json:"contact_requested"`
	TransportNeeded   bool `json:"transport_needed"`
}

// EmergencyAnalysis is the triage result for one emergency text. Level is on
// the 1-10 scale; 7 and above requires an immediate response.
type EmergencyAnalysis struct {
	OriginalText              string        `json:"original_text"`
	Language                  string        `json:"language"`
	EmergencyLevel            int           `json:"emergency_level"`
	ExtractedInfo             ExtractedInfo `json:"extracted_info"`
	RequiresImmediateResponse bool          `json:"requires_immediate_response"`
}
