package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookedStock is inventory reserved against a customer order prior to
// physical loading. QuantityLoaded never exceeds Quantity. Status is set by
// the loading workflow, not derived automatically; writes that contradict
// the loaded/ordered ratio are rejected at the service layer.
type BookedStock struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"customerId"`
	OrderID        string             `gorm:"size:100;not null" json:"orderId"`
	ProductName    string             `gorm:"size:255;not null" json:"productName"`
	Quantity       decimal.Decimal    `gorm:"type:numeric(14,2);not null" json:"quantity"`
	QuantityLoaded decimal.Decimal    `gorm:"type:numeric(14,2);not null;default:0" json:"quantityLoaded"`
	Unit           string             `gorm:"size:50;not null" json:"unit"`
	Status         enum.BookingStatus `gorm:"size:50;not null;default:'pending'" json:"status"`
	BookingDate    time.Time          `gorm:"not null" json:"bookingDate"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new booked-stock record
func (b *BookedStock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BookedStock model
func (BookedStock) TableName() string {
	return "booked_stock"
}
