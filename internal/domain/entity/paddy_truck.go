package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaddyTruck records a truckload of paddy received from a supplier at the
// weighbridge. NetWeight = GrossWeight - TareWeight and Amount =
// NetWeight * PricePerKg; both are computed once at creation.
type PaddyTruck struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplierId"`
	TruckNo     string          `gorm:"size:50;not null" json:"truckNo"`
	GrossWeight decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"grossWeight"`
	TareWeight  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"tareWeight"`
	NetWeight   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"netWeight"`
	PricePerKg  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pricePerKg"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Notes       *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new paddy truck record
func (p *PaddyTruck) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaddyTruck model
func (PaddyTruck) TableName() string {
	return "paddy_trucks"
}
