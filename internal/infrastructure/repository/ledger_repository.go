package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	domainRepo "github.com/milldesk/milldesk-api/internal/domain/repository"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.LedgerEntry, error) {
	var entries []entity.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepository) ListAll(ctx context.Context) ([]entity.LedgerEntry, error) {
	var entries []entity.LedgerEntry
	err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&entries).Error
	return entries, err
}

// ReplaceForCustomer rewrites one customer's entries atomically. Running
// balances are recomputed by the caller before the rewrite, never patched
// row by row.
func (r *ledgerRepository) ReplaceForCustomer(ctx context.Context, customerID uuid.UUID, entries []entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customerID).Delete(&entity.LedgerEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

