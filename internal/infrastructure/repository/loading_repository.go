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

type loadingRepository struct {
	db *gorm.DB
}

// NewLoadingRepository creates a new loading repository
func NewLoadingRepository(db *gorm.DB) domainRepo.LoadingRepository {
	return &loadingRepository{db: db}
}

func (r *loadingRepository) Create(ctx context.Context, loading *entity.Loading) error {
	return r.db.WithContext(ctx).Create(loading).Error
}

func (r *loadingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Loading, error) {
	var loading entity.Loading
	err := r.db.WithContext(ctx).First(&loading, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &loading, err
}

func (r *loadingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Loading{}, "id = ?", id).Error
}

func (r *loadingRepository) List(ctx context.Context, from, to *time.Time) ([]entity.Loading, error) {
	var loadings []entity.Loading
	query := r.db.WithContext(ctx).Model(&entity.Loading{})
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date < ?", *to)
	}
	err := query.Order("date DESC, created_at DESC").Find(&loadings).Error
	return loadings, err
}

func (r *loadingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Loading, error) {
	var loadings []entity.Loading
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, created_at DESC").
		Find(&loadings).Error
	return loadings, err
}
