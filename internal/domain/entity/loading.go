package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Loading records rice physically loaded onto a customer's truck.
type Loading struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	WaybillNo   string          `gorm:"size:50;not null" json:"waybillNo"`
	ProductName string          `gorm:"size:255;not null" json:"productName"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"quantity"`
	Unit        string          `gorm:"size:50;not null" json:"unit"`
	TruckNo     string          `gorm:"size:50;not null" json:"truckNo"`
	Driver      *string         `gorm:"size:255" json:"driver,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Notes       *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new loading
func (l *Loading) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Loading model
func (Loading) TableName() string {
	return "loadings"
}
