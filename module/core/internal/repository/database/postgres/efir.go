package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
	"github.com/samartharora25/SafeRove-Final/module/core/internal/repository/database"
)

var _ database.EFIRRepository = (*EFIRRepo)(nil)

// EFIRRepo stores registered reports with the full document as JSON
// alongside the lookup columns.
type EFIRRepo struct {
	db *sql.DB
}

func NewEFIRRepo(db *sql.DB) *EFIRRepo {
	return &EFIRRepo{db: db}
}

func (r *EFIRRepo) Insert(ctx context.Context, efir *domain.EFIR) error {
	doc, err := json.Marshal(efir)
	if err != nil {
		return fmt.Errorf("marshal efir: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO efirs (id, complaint_number, tourist_id, document, created_at) VALUES ($1, $2, $3, $4, $5)`,
		efir.ID, efir.ComplaintNumber, efir.Complainant.TouristID, doc, efir.DateTime,
	)
	return err
}
