package domain

// LatLng is a WGS84 coordinate pair, ordered (latitude, longitude) at every
// interface boundary.
type LatLng struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// RiskZone is a registered polygonal geofence with an associated risk level
// on the 1-10 scale. The polygon is an ordered vertex ring, implicitly
// closed; geometry is accepted as-is without validation.
type RiskZone struct {
	ID        string   `json:"zone_id"`
	Polygon   []LatLng `json:"coordinates"`
	RiskLevel int      `json:"risk_level"`
	Active    bool     `json:"active"`
}
