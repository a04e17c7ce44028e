package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents a rice customer of the mill.
//
// Balance is derived: it mirrors the running balance of the customer's most
// recent ledger entry, or zero when no entries exist. Sign convention:
// negative = customer owes the mill (receivable), positive = the mill owes
// the customer (credit), zero = settled. JSON field names are the wire
// contract shared with the console UI and the backup files.
type Customer struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	State     enum.State      `gorm:"size:50;not null" json:"state"`
	Balance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	LedgerEntries []LedgerEntry `gorm:"foreignKey:CustomerID" json:"-"`
	BookedStock   []BookedStock `gorm:"foreignKey:CustomerID" json:"-"`
	Loadings      []Loading     `gorm:"foreignKey:CustomerID" json:"-"`
	Sales         []Sale        `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
