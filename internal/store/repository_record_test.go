// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/models"
)

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recordRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testRecords(n int) []models.EntityRecord {
	records := make([]models.EntityRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.EntityRecord{
			RecordID:  string(rune('a' + i)),
			Payload:   json.RawMessage(`{}`),
			UpdatedAt: time.Now(),
		})
	}
	return records
}

func TestReplaceEntityRecords_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	records := testRecords(2)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entity_records").
		WithArgs("clinic-a", models.EntityPatients).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO entity_records").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO entity_records").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceEntityRecords(context.Background(), "clinic-a", models.EntityPatients, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestReplaceEntityRecords_EmptyPullClearsCache(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entity_records").
		WithArgs("clinic-a", models.EntityInvoices).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	err := repo.ReplaceEntityRecords(context.Background(), "clinic-a", models.EntityInvoices, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestReplaceEntityRecords_BeginError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("db is locked"))

	err := repo.ReplaceEntityRecords(context.Background(), "clinic-a", models.EntityPatients, testRecords(1))
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestReplaceEntityRecords_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entity_records").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO entity_records").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ReplaceEntityRecords(context.Background(), "clinic-a", models.EntityPatients, testRecords(1))
	if err == nil || !strings.Contains(err.Error(), "failed to save patients record") {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestReplaceEntityRecords_CommitError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entity_records").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := repo.ReplaceEntityRecords(context.Background(), "clinic-a", models.EntityPatients, nil)
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}

func TestListRecords_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"record_id", "payload", "updated_at"}).
		AddRow("rec-1", []byte(`{"given_name":"Aliya"}`), now).
		AddRow("rec-2", []byte(`{"given_name":"Marat"}`), now)

	mock.ExpectQuery("SELECT record_id, payload, updated_at FROM entity_records").
		WithArgs("clinic-a", models.EntityPatients).
		WillReturnRows(rows)

	items, err := repo.ListRecords(context.Background(), models.RecordFilter{
		ClinicID: "clinic-a",
		Entity:   models.EntityPatients,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].RecordID != "rec-1" {
		t.Errorf("expected record_id rec-1, got %s", items[0].RecordID)
	}
	if string(items[0].Payload) != `{"given_name":"Aliya"}` {
		t.Errorf("payload not preserved verbatim: %s", items[0].Payload)
	}
}

func TestListRecords_QueryError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT record_id, payload, updated_at FROM entity_records").
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListRecords(context.Background(), models.RecordFilter{
		ClinicID: "clinic-a",
		Entity:   models.EntityPatients,
	})
	if err == nil || !strings.Contains(err.Error(), "failed to query cached patients records") {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestListRecords_ScanError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"record_id"}). // intentionally wrong shape → scan error
		AddRow("rec-1")

	mock.ExpectQuery("SELECT record_id, payload, updated_at FROM entity_records").
		WillReturnRows(rows)

	_, err := repo.ListRecords(context.Background(), models.RecordFilter{
		ClinicID: "clinic-a",
		Entity:   models.EntityPatients,
	})
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestCountRecords_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("clinic-a", models.EntityAppointments).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

	count, err := repo.CountRecords(context.Background(), "clinic-a", models.EntityAppointments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 17 {
		t.Errorf("expected count=17, got %d", count)
	}
}

func TestPurgeClinic_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM entity_records").
		WithArgs("clinic-a").
		WillReturnResult(sqlmock.NewResult(0, 42))

	if err := repo.PurgeClinic(context.Background(), "clinic-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
