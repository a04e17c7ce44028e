package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerEntry is one dated transaction on a customer's account.
//
// Entries are append-only: they are never mutated or reordered in place.
// RunningBalance is the cumulative balance immediately after this entry is
// applied, valid as of the entry's position when the customer's entries are
// ordered by Date ascending with CreatedAt breaking ties. Recomputation is
// done by resorting the full set, not by patching a value in the middle.
type LedgerEntry struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	Date           time.Time       `gorm:"not null;index" json:"date"`
	Description    string          `gorm:"size:255" json:"description"`
	Debit          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"debit"`
	Credit         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"credit"`
	RunningBalance decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"runningBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// BeforeCreate generates a UUID before creating a new ledger entry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
