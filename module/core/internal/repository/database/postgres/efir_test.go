package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

func TestEFIRInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO efirs`).
		WithArgs("e-1", "EFIR20240506143056", "T-1", sqlmock.AnyArg(), ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewEFIRRepo(db)
	err = repo.Insert(context.Background(), &domain.EFIR{
		ID:              "e-1",
		ComplaintNumber: "EFIR20240506143056",
		DateTime:        ts,
		Complainant:     domain.ComplainantDetails{TouristID: "T-1"},
		Status:          domain.EFIRStatusRegistered,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestEFIRInsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO efirs`).
		WillReturnError(sqlmock.ErrCancelled)

	repo := NewEFIRRepo(db)
	err = repo.Insert(context.Background(), &domain.EFIR{ID: "e-2"})
	if err == nil {
		t.Fatal("expected error")
	}
}
