package service

import (
	"sort"
	"sync"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

// minRiskLevel is returned when no active zone contains the queried point.
const minRiskLevel = 1

// ZoneIndex is the in-memory registry of polygonal risk zones. Reads vastly
// outnumber writes; registration is last-write-wins per zone id.
type ZoneIndex struct {
	mu    sync.RWMutex
	zones map[string]domain.RiskZone
}

func NewZoneIndex() *ZoneIndex {
	return &ZoneIndex{zones: make(map[string]domain.RiskZone)}
}

// NewZoneIndexFrom seeds the index, typically from the zones persisted at
// last shutdown.
func NewZoneIndexFrom(zones []domain.RiskZone) *ZoneIndex {
	ix := NewZoneIndex()
	for _, z := range zones {
		ix.zones[z.ID] = z
	}
	return ix
}

// AddZone registers or replaces a zone. It always succeeds: geometry is
// accepted as-is, self-intersecting or degenerate rings included.
func (ix *ZoneIndex) AddZone(id string, polygon []domain.LatLng, riskLevel int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.zones[id] = domain.RiskZone{
		ID:        id,
		Polygon:   polygon,
		RiskLevel: riskLevel,
		Active:    true,
	}
}

// SetActive toggles a zone's contribution to CheckRisk without deleting it.
// Returns false if the zone is unknown.
func (ix *ZoneIndex) SetActive(id string, active bool) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	z, ok := ix.zones[id]
	if !ok {
		return false
	}
	z.Active = active
	ix.zones[id] = z
	return true
}

// CheckRisk returns the maximum risk level among the active zones whose
// polygon contains the point, or 1 when none does. Overlap ties resolve to
// the highest level regardless of iteration order.
func (ix *ZoneIndex) CheckRisk(lat, lng float64) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	maxRisk := minRiskLevel
	for _, z := range ix.zones {
		if !z.Active {
			continue
		}
		if pointInPolygon(lng, lat, z.Polygon) && z.RiskLevel > maxRisk {
			maxRisk = z.RiskLevel
		}
	}
	return maxRisk
}

// Zones returns a snapshot of every registered zone, ordered by id.
func (ix *ZoneIndex) Zones() []domain.RiskZone {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]domain.RiskZone, 0, len(ix.zones))
	for _, z := range ix.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// pointInPolygon ray-casts eastward from (x, y) and counts edge crossings.
// The ring is implicitly closed and compared on (x=lng, y=lat).
//
// Boundary rule: an edge counts only when it strictly straddles the point's
// y and the intersection lies strictly east of the point. The practical
// effect is that points on a polygon's west or south boundary test inside,
// while points on its east or north boundary test outside.
func pointInPolygon(x, y float64, ring []domain.LatLng) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i].Lng, ring[i].Lat
		xj, yj := ring[j].Lng, ring[j].Lat
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
