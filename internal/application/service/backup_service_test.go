package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/backup"
	"github.com/milldesk/milldesk-api/internal/config"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
)

type captureRestoreRepo struct {
	calls int
	set   *repository.RestoreSet
}

func (r *captureRestoreRepo) Restore(_ context.Context, set *repository.RestoreSet) error {
	r.calls++
	r.set = set
	return nil
}

func newBackupServiceForTest(restore *captureRestoreRepo) *BackupService {
	return NewBackupService(config.BackupConfig{}, nil, nil, nil, nil, nil, restore)
}

func backupCustomer() entity.Customer {
	return entity.Customer{
		ID:        uuid.New(),
		Name:      "Alhaji Musa",
		State:     enum.StateKano,
		Balance:   decimal.RequireFromString("-27800"),
		CreatedAt: time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 13, 11, 0, 0, 0, time.UTC),
	}
}

func TestImportLegacyArrayPreservesSideCollections(t *testing.T) {
	restore := &captureRestoreRepo{}
	svc := newBackupServiceForTest(restore)

	data, err := backup.ExportCustomersJSON([]entity.Customer{backupCustomer()})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := svc.ImportCustomers(context.Background(), data); err != nil {
		t.Fatalf("import: %v", err)
	}

	if restore.calls != 1 {
		t.Fatalf("restore ran %d times, want exactly 1", restore.calls)
	}
	if len(restore.set.Customers) != 1 {
		t.Fatalf("restore carried %d customers, want 1", len(restore.set.Customers))
	}
	// A customer-array file says nothing about ledgers, sales or bookings;
	// restoring it must not clear them.
	if restore.set.LedgerEntries != nil || restore.set.Sales != nil || restore.set.BookedStock != nil {
		t.Error("legacy customer-array import scheduled side collections for replacement")
	}
}

func TestImportEnvelopeReplacesOnlyCarriedCollections(t *testing.T) {
	restore := &captureRestoreRepo{}
	svc := newBackupServiceForTest(restore)

	env := &backup.Envelope{
		Customers: []entity.Customer{backupCustomer()},
		Sales:     []entity.Sale{},
	}
	data, err := backup.ExportFullJSON(env)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := svc.ImportCustomers(context.Background(), data); err != nil {
		t.Fatalf("import: %v", err)
	}

	if restore.set.Sales == nil {
		t.Error("empty sales array in the document must clear stored sales, not preserve them")
	}
	if len(restore.set.Sales) != 0 {
		t.Errorf("restore carried %d sales, want 0", len(restore.set.Sales))
	}
}

func TestImportRespectsMaxSize(t *testing.T) {
	svc := NewBackupService(config.BackupConfig{MaxImportSize: 8}, nil, nil, nil, nil, nil, &captureRestoreRepo{})
	if _, err := svc.ImportCustomers(context.Background(), []byte(`[{"id":"x"}]`)); err == nil {
		t.Fatal("expected oversized import to be rejected")
	}
}

func TestImportInvalidDocumentSkipsRestore(t *testing.T) {
	restore := &captureRestoreRepo{}
	svc := newBackupServiceForTest(restore)
	if _, err := svc.ImportCustomers(context.Background(), []byte(`{"version":"1.0","customers":[]}`)); err == nil {
		t.Fatal("expected unsupported version to be rejected")
	}
	if restore.calls != 0 {
		t.Errorf("invalid document still ran the restore %d times", restore.calls)
	}
}
