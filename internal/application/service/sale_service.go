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

// SaleService handles sale records. Recording a sale also posts a debit to
// the customer's ledger, so the receivable shows up in the balance
// immediately.
type SaleService struct {
	saleRepo        repository.SaleRepository
	customerService *CustomerService
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, customerService *CustomerService) *SaleService {
	return &SaleService{saleRepo: saleRepo, customerService: customerService}
}

// RecordSaleInput represents the record sale input
type RecordSaleInput struct {
	CustomerID  uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Date        time.Time
}

// RecordSale validates and records a sale, then debits the customer's
// ledger by the sale amount. Amount = quantity * unit price, rounded to 2dp.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Sale, error) {
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
	if input.UnitPrice.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "unitPrice", Message: "Unit price must not be negative"},
		})
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	amount := input.Quantity.Mul(input.UnitPrice).Round(2)
	sale := &entity.Sale{
		CustomerID:  input.CustomerID,
		ProductName: strings.TrimSpace(input.ProductName),
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		UnitPrice:   input.UnitPrice,
		Amount:      amount,
		Date:        input.Date,
	}

	// The sale is written before its debit posts: a failed ledger write leaves
	// a sale the staff can re-charge, never a charge for a sale that was
	// never recorded. The customer check runs first so an unknown customer
	// produces no sale row either.
	if _, err := s.customerService.GetCustomer(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	description := sale.ProductName
	if input.Unit != "" {
		description = input.Quantity.String() + " " + input.Unit + " " + sale.ProductName
	}
	if _, err := s.customerService.AddLedgerEntry(ctx, input.CustomerID, &AddLedgerEntryInput{
		Date:        input.Date,
		Description: description,
		Debit:       amount,
		Credit:      decimal.Zero,
	}); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns sales inside an optional date window, or for one
// customer.
func (s *SaleService) ListSales(ctx context.Context, customerID *uuid.UUID, from, to *time.Time) ([]entity.Sale, error) {
	if customerID != nil {
		return s.saleRepo.ListByCustomer(ctx, *customerID)
	}
	return s.saleRepo.List(ctx, from, to)
}
