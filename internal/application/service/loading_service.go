package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
	"github.com/milldesk/milldesk-api/pkg/apperror"
	"github.com/milldesk/milldesk-api/pkg/utils"
)

// LoadingService handles loading (dispatch) records: product leaving the
// mill on a truck. Loadings created here are standalone; loadings against a
// booking go through BookingService.LoadBooking.
type LoadingService struct {
	loadingRepo  repository.LoadingRepository
	customerRepo repository.CustomerRepository
}

// NewLoadingService creates a new loading service
func NewLoadingService(loadingRepo repository.LoadingRepository, customerRepo repository.CustomerRepository) *LoadingService {
	return &LoadingService{loadingRepo: loadingRepo, customerRepo: customerRepo}
}

// CreateLoadingInput represents the create loading input
type CreateLoadingInput struct {
	CustomerID  uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	TruckNo     string
	Driver      *string
	Date        time.Time
	Notes       *string
}

// CreateLoading validates and records a dispatch.
func (s *LoadingService) CreateLoading(ctx context.Context, input *CreateLoadingInput) (*entity.Loading, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if strings.TrimSpace(input.ProductName) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "productName", Message: "Product name is required"},
		})
	}
	if !input.Quantity.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Quantity must be positive"},
		})
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	loading := &entity.Loading{
		CustomerID:  input.CustomerID,
		WaybillNo:   utils.GenerateWaybillNo(),
		ProductName: strings.TrimSpace(input.ProductName),
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		TruckNo:     strings.TrimSpace(input.TruckNo),
		Driver:      input.Driver,
		Date:        input.Date,
		Notes:       input.Notes,
	}
	if err := s.loadingRepo.Create(ctx, loading); err != nil {
		return nil, err
	}
	return loading, nil
}

// GetLoading retrieves a loading by ID
func (s *LoadingService) GetLoading(ctx context.Context, id uuid.UUID) (*entity.Loading, error) {
	loading, err := s.loadingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loading == nil {
		return nil, apperror.NewNotFoundError("Loading")
	}
	return loading, nil
}

// DeleteLoading removes a loading record.
func (s *LoadingService) DeleteLoading(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetLoading(ctx, id); err != nil {
		return err
	}
	return s.loadingRepo.Delete(ctx, id)
}

// ListLoadings returns loadings inside an optional date window, or for one
// customer.
func (s *LoadingService) ListLoadings(ctx context.Context, customerID *uuid.UUID, from, to *time.Time) ([]entity.Loading, error) {
	if customerID != nil {
		return s.loadingRepo.ListByCustomer(ctx, *customerID)
	}
	return s.loadingRepo.List(ctx, from, to)
}
