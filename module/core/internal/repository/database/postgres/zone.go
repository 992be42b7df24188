package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database"
)

var _ database.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo persists risk zones; the polygon ring is stored as JSON.
type ZoneRepo struct {
	db *sql.DB
}

func NewZoneRepo(db *sql.DB) *ZoneRepo {
	return &ZoneRepo{db: db}
}

func (r *ZoneRepo) Upsert(ctx context.Context, zone *domain.RiskZone) error {
	polygon, err := json.Marshal(zone.Polygon)
	if err != nil {
		return fmt.Errorf("marshal polygon: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO risk_zones (zone_id, polygon, risk_level, active) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (zone_id) DO UPDATE SET polygon = EXCLUDED.polygon, risk_level = EXCLUDED.risk_level, active = EXCLUDED.active`,
		zone.ID, polygon, zone.RiskLevel, zone.Active,
	)
	return err
}

func (r *ZoneRepo) SetActive(ctx context.Context, zoneID string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE risk_zones SET active = $2 WHERE zone_id = $1`,
		zoneID, active,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ZoneRepo) List(ctx context.Context) ([]domain.RiskZone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT zone_id, polygon, risk_level, active FROM risk_zones ORDER BY zone_id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var zones []domain.RiskZone
	for rows.Next() {
		var z domain.RiskZone
		var polygon []byte
		if err := rows.Scan(&z.ID, &polygon, &z.RiskLevel, &z.Active); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(polygon, &z.Polygon); err != nil {
			return nil, fmt.Errorf("unmarshal polygon for zone %s: %w", z.ID, err)
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}
