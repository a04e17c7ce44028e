package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	domainRepo "github.com/milldesk/milldesk-api/internal/domain/repository"
)

type paddyTruckRepository struct {
	db *gorm.DB
}

// NewPaddyTruckRepository creates a new paddy truck repository
func NewPaddyTruckRepository(db *gorm.DB) domainRepo.PaddyTruckRepository {
	return &paddyTruckRepository{db: db}
}

func (r *paddyTruckRepository) Create(ctx context.Context, truck *entity.PaddyTruck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *paddyTruckRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaddyTruck, error) {
	var truck entity.PaddyTruck
	err := r.db.WithContext(ctx).First(&truck, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &truck, err
}

func (r *paddyTruckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PaddyTruck{}, "id = ?", id).Error
}

func (r *paddyTruckRepository) List(ctx context.Context, from, to *time.Time) ([]entity.PaddyTruck, error) {
	var trucks []entity.PaddyTruck
	query := r.db.WithContext(ctx).Model(&entity.PaddyTruck{})
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date < ?", *to)
	}
	err := query.Order("date DESC, created_at DESC").Find(&trucks).Error
	return trucks, err
}

func (r *paddyTruckRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.PaddyTruck, error) {
	var trucks []entity.PaddyTruck
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("date DESC, created_at DESC").
		Find(&trucks).Error
	return trucks, err
}
