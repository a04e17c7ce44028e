package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/milldesk/milldesk-api/internal/application/backup"
	"github.com/milldesk/milldesk-api/internal/config"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
	"github.com/milldesk/milldesk-api/pkg/apperror"
	"github.com/milldesk/milldesk-api/pkg/metrics"
)

// BackupService produces collection exports and restores full backups. In
// file persistence mode every full export is also mirrored to the backup
// directory on disk, giving the mill an on-site copy independent of the
// database.
type BackupService struct {
	cfg          config.BackupConfig
	customerRepo repository.CustomerRepository
	ledgerRepo   repository.LedgerRepository
	supplierRepo repository.SupplierRepository
	bookingRepo  repository.BookingRepository
	saleRepo     repository.SaleRepository
	restoreRepo  repository.RestoreRepository
}

// NewBackupService creates a new backup service
func NewBackupService(
	cfg config.BackupConfig,
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.LedgerRepository,
	supplierRepo repository.SupplierRepository,
	bookingRepo repository.BookingRepository,
	saleRepo repository.SaleRepository,
	restoreRepo repository.RestoreRepository,
) *BackupService {
	return &BackupService{
		cfg:          cfg,
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		supplierRepo: supplierRepo,
		bookingRepo:  bookingRepo,
		saleRepo:     saleRepo,
		restoreRepo:  restoreRepo,
	}
}

// Export represents a rendered download: bytes plus the suggested filename
// and content type.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportCustomersJSON renders the customer collection as a bare JSON array.
func (s *BackupService) ExportCustomersJSON(ctx context.Context) (*Export, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportCustomersJSON(customers)
	if err != nil {
		return nil, err
	}
	return &Export{
		FileName:    backup.FileName("customers", time.Now(), "json"),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// ExportCustomersCSV renders the customer collection as CSV.
func (s *BackupService) ExportCustomersCSV(ctx context.Context) (*Export, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportCustomersCSV(customers)
	if err != nil {
		return nil, err
	}
	return &Export{
		FileName:    backup.FileName("customers", time.Now(), "csv"),
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// ExportCustomersXLSX renders the customer collection as a workbook.
func (s *BackupService) ExportCustomersXLSX(ctx context.Context) (*Export, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportCustomersXLSX(customers)
	if err != nil {
		return nil, err
	}
	return &Export{
		FileName:    backup.FileName("customers", time.Now(), "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

// ExportSuppliersJSON renders the supplier collection as a bare JSON array.
func (s *BackupService) ExportSuppliersJSON(ctx context.Context) (*Export, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportSuppliersJSON(suppliers)
	if err != nil {
		return nil, err
	}
	return &Export{
		FileName:    backup.FileName("suppliers", time.Now(), "json"),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// ExportSuppliersCSV renders the supplier collection as CSV.
func (s *BackupService) ExportSuppliersCSV(ctx context.Context) (*Export, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportSuppliersCSV(suppliers)
	if err != nil {
		return nil, err
	}
	return &Export{
		FileName:    backup.FileName("suppliers", time.Now(), "csv"),
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// ExportFull renders the tagged envelope: customers plus their sales,
// ledger entries and booked stock. In file persistence mode the document is
// also written to the backup directory.
func (s *BackupService) ExportFull(ctx context.Context) (*Export, error) {
	env, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := backup.ExportFullJSON(env)
	if err != nil {
		return nil, err
	}
	name := backup.FullBackupFileName("customers", time.Now())

	if s.cfg.PersistenceMode == enum.PersistenceModeFile {
		if err := s.mirrorToDisk(name, data); err != nil {
			return nil, fmt.Errorf("mirroring backup to disk: %w", err)
		}
	}

	return &Export{
		FileName:    name,
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// ImportCustomers validates an uploaded backup and, only when the whole
// batch is valid, replaces the stored collections with its contents in a
// single restore. Collections the document does not carry are preserved.
// Identity, balances and timestamps are preserved verbatim, so importing a
// file produced by export restores the exact prior state.
func (s *BackupService) ImportCustomers(ctx context.Context, data []byte) (*backup.Envelope, error) {
	if s.cfg.MaxImportSize > 0 && int64(len(data)) > s.cfg.MaxImportSize {
		return nil, apperror.NewBadRequestError("Import file exceeds the maximum allowed size")
	}

	env, err := backup.ImportCustomers(data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	// A nil collection was absent from the uploaded document: it must survive
	// the restore untouched. Legacy customer-array files only carry customers.
	set := &repository.RestoreSet{
		Customers:     env.Customers,
		LedgerEntries: env.LedgerEntries,
		Sales:         env.Sales,
		BookedStock:   env.BookedStock,
	}
	if err := s.restoreRepo.Restore(ctx, set); err != nil {
		return nil, err
	}

	metrics.ImportedRecordsTotal.WithLabelValues("customers").Add(float64(len(env.Customers)))
	if env.LedgerEntries != nil {
		metrics.ImportedRecordsTotal.WithLabelValues("ledgerEntries").Add(float64(len(env.LedgerEntries)))
	}
	if env.BookedStock != nil {
		metrics.ImportedRecordsTotal.WithLabelValues("bookedStock").Add(float64(len(env.BookedStock)))
	}
	if env.Sales != nil {
		metrics.ImportedRecordsTotal.WithLabelValues("sales").Add(float64(len(env.Sales)))
	}
	return env, nil
}

func (s *BackupService) snapshot(ctx context.Context) (*backup.Envelope, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return &backup.Envelope{
		Customers:     customers,
		LedgerEntries: entries,
		BookedStock:   bookings,
		Sales:         sales,
	}, nil
}

func (s *BackupService) mirrorToDisk(name string, data []byte) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.cfg.Dir, name), data, 0o644)
}
