package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	domainRepo "github.com/milldesk/milldesk-api/internal/domain/repository"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.BookedStock) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BookedStock, error) {
	var booking entity.BookedStock
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.BookedStock) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BookedStock{}, "id = ?", id).Error
}

func (r *bookingRepository) List(ctx context.Context) ([]entity.BookedStock, error) {
	var bookings []entity.BookedStock
	err := r.db.WithContext(ctx).Order("booking_date DESC, created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.BookedStock, error) {
	var bookings []entity.BookedStock
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("booking_date DESC, created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

