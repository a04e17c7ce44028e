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
)

// PaddyService handles paddy truck receiving: raw paddy arriving from a
// supplier, weighed in and out at the gate. Net weight and amount are
// derived at creation and stored, so later price edits never silently
// change historical records.
type PaddyService struct {
	paddyRepo    repository.PaddyTruckRepository
	supplierRepo repository.SupplierRepository
}

// NewPaddyService creates a new paddy service
func NewPaddyService(paddyRepo repository.PaddyTruckRepository, supplierRepo repository.SupplierRepository) *PaddyService {
	return &PaddyService{paddyRepo: paddyRepo, supplierRepo: supplierRepo}
}

// ReceivePaddyInput represents a truck arriving at the weighbridge.
type ReceivePaddyInput struct {
	SupplierID  uuid.UUID
	TruckNo     string
	GrossWeight decimal.Decimal
	TareWeight  decimal.Decimal
	PricePerKg  decimal.Decimal
	Date        time.Time
	Notes       *string
}

// ReceivePaddy validates the weighbridge figures and records the truck.
// NetWeight = gross - tare; Amount = net * price per kg, rounded to 2dp.
func (s *PaddyService) ReceivePaddy(ctx context.Context, input *ReceivePaddyInput) (*entity.PaddyTruck, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	if strings.TrimSpace(input.TruckNo) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "truckNo", Message: "Truck number is required"},
		})
	}
	if !input.GrossWeight.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "grossWeight", Message: "Gross weight must be positive"},
		})
	}
	if input.TareWeight.IsNegative() || input.TareWeight.GreaterThanOrEqual(input.GrossWeight) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "tareWeight", Message: "Tare weight must be non-negative and less than gross weight"},
		})
	}
	if input.PricePerKg.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "pricePerKg", Message: "Price per kg must not be negative"},
		})
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	net := input.GrossWeight.Sub(input.TareWeight)
	truck := &entity.PaddyTruck{
		SupplierID:  input.SupplierID,
		TruckNo:     strings.TrimSpace(input.TruckNo),
		GrossWeight: input.GrossWeight,
		TareWeight:  input.TareWeight,
		NetWeight:   net,
		PricePerKg:  input.PricePerKg,
		Amount:      net.Mul(input.PricePerKg).Round(2),
		Date:        input.Date,
		Notes:       input.Notes,
	}
	if err := s.paddyRepo.Create(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

// GetPaddyTruck retrieves a receiving record by ID
func (s *PaddyService) GetPaddyTruck(ctx context.Context, id uuid.UUID) (*entity.PaddyTruck, error) {
	truck, err := s.paddyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, apperror.NewNotFoundError("Paddy truck")
	}
	return truck, nil
}

// DeletePaddyTruck removes a receiving record.
func (s *PaddyService) DeletePaddyTruck(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPaddyTruck(ctx, id); err != nil {
		return err
	}
	return s.paddyRepo.Delete(ctx, id)
}

// ListPaddyTrucks returns receiving records inside an optional date window,
// or for one supplier.
func (s *PaddyService) ListPaddyTrucks(ctx context.Context, supplierID *uuid.UUID, from, to *time.Time) ([]entity.PaddyTruck, error) {
	if supplierID != nil {
		return s.paddyRepo.ListBySupplier(ctx, *supplierID)
	}
	return s.paddyRepo.List(ctx, from, to)
}
