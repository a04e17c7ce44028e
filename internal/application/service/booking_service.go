package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
	"github.com/milldesk/milldesk-api/pkg/apperror"
	"github.com/milldesk/milldesk-api/pkg/utils"
)

// BookingService handles booked stock: product reserved by a customer ahead
// of loading. Loading against a booking advances quantityLoaded and keeps
// the status consistent with the loaded fraction.
type BookingService struct {
	bookingRepo  repository.BookingRepository
	customerRepo repository.CustomerRepository
	loadingRepo  repository.LoadingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repository.BookingRepository, customerRepo repository.CustomerRepository, loadingRepo repository.LoadingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, customerRepo: customerRepo, loadingRepo: loadingRepo}
}

// CreateBookingInput represents the create booking input
type CreateBookingInput struct {
	CustomerID  uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	BookingDate time.Time
	Notes       *string
}

// UpdateBookingInput represents the update booking input. Nil fields are
// left unchanged. Status changes go through their own consistency check.
type UpdateBookingInput struct {
	ProductName *string
	Quantity    *decimal.Decimal
	Unit        *string
	Status      *enum.BookingStatus
	BookingDate *time.Time
	Notes       *string
}

// LoadBookingInput records a quantity leaving the mill against a booking.
type LoadBookingInput struct {
	Quantity decimal.Decimal
	TruckNo  string
	Driver   *string
	Date     time.Time
	Notes    *string
}

// CreateBooking creates a booking with a generated order number and a
// pending status.
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.BookedStock, error) {
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
	if input.BookingDate.IsZero() {
		input.BookingDate = time.Now()
	}

	booking := &entity.BookedStock{
		CustomerID:     input.CustomerID,
		OrderID:        utils.GenerateOrderNo(),
		ProductName:    strings.TrimSpace(input.ProductName),
		Quantity:       input.Quantity,
		QuantityLoaded: decimal.Zero,
		Unit:           input.Unit,
		Status:         enum.BookingStatusPending,
		BookingDate:    input.BookingDate,
		Notes:          input.Notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking retrieves a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.BookedStock, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// UpdateBooking applies a partial update. A caller-set status must agree
// with the booking's loaded fraction; shrinking quantity below what is
// already loaded is rejected.
func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, input *UpdateBookingInput) (*entity.BookedStock, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ProductName != nil {
		name := strings.TrimSpace(*input.ProductName)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "productName", Message: "Product name is required"},
			})
		}
		booking.ProductName = name
	}
	if input.Quantity != nil {
		if !input.Quantity.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "quantity", Message: "Quantity must be positive"},
			})
		}
		if input.Quantity.LessThan(booking.QuantityLoaded) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "quantity", Message: "Quantity cannot be less than the quantity already loaded"},
			})
		}
		booking.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		booking.Unit = *input.Unit
	}
	if input.BookingDate != nil {
		booking.BookingDate = *input.BookingDate
	}
	if input.Notes != nil {
		booking.Notes = input.Notes
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "status", Message: "Unknown status"},
			})
		}
		if err := validateStatusConsistency(*input.Status, booking.Quantity, booking.QuantityLoaded); err != nil {
			return nil, err
		}
		booking.Status = *input.Status
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// DeleteBooking removes a booking.
func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetBooking(ctx, id); err != nil {
		return err
	}
	return s.bookingRepo.Delete(ctx, id)
}

// ListBookings returns every booking, optionally narrowed to one customer.
func (s *BookingService) ListBookings(ctx context.Context, customerID *uuid.UUID) ([]entity.BookedStock, error) {
	if customerID != nil {
		return s.bookingRepo.ListByCustomer(ctx, *customerID)
	}
	return s.bookingRepo.List(ctx)
}

// LoadBooking records a loading against a booking: quantityLoaded advances,
// the status follows the loaded fraction, and a loading (dispatch) record is
// written for the customer. A cancelled booking cannot be loaded, and the
// total loaded can never exceed the booked quantity.
func (s *BookingService) LoadBooking(ctx context.Context, id uuid.UUID, input *LoadBookingInput) (*entity.BookedStock, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == enum.BookingStatusCancelled {
		return nil, apperror.NewBadRequestError("Cannot load against a cancelled booking")
	}
	if !input.Quantity.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Quantity must be positive"},
		})
	}
	newLoaded := booking.QuantityLoaded.Add(input.Quantity)
	if newLoaded.GreaterThan(booking.Quantity) {
		remaining := booking.Quantity.Sub(booking.QuantityLoaded)
		return nil, apperror.NewBadRequestError("Only " + remaining.String() + " " + booking.Unit + " remain on this booking")
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	loading := &entity.Loading{
		CustomerID:  booking.CustomerID,
		WaybillNo:   utils.GenerateWaybillNo(),
		ProductName: booking.ProductName,
		Quantity:    input.Quantity,
		Unit:        booking.Unit,
		TruckNo:     strings.TrimSpace(input.TruckNo),
		Driver:      input.Driver,
		Date:        input.Date,
		Notes:       input.Notes,
	}
	if err := s.loadingRepo.Create(ctx, loading); err != nil {
		return nil, err
	}

	booking.QuantityLoaded = newLoaded
	booking.Status = statusForLoaded(booking.Quantity, newLoaded)
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// statusForLoaded derives the lifecycle status from the loaded fraction.
func statusForLoaded(quantity, loaded decimal.Decimal) enum.BookingStatus {
	switch {
	case loaded.GreaterThanOrEqual(quantity):
		return enum.BookingStatusFullyLoaded
	case loaded.IsPositive():
		return enum.BookingStatusPartialLoaded
	default:
		return enum.BookingStatusConfirmed
	}
}

// validateStatusConsistency rejects caller-set statuses that contradict the
// loaded fraction, e.g. marking a half-loaded booking pending.
func validateStatusConsistency(status enum.BookingStatus, quantity, loaded decimal.Decimal) error {
	if status == enum.BookingStatusCancelled {
		if loaded.IsPositive() {
			return apperror.NewBadRequestError("Cannot cancel a booking that has already been loaded against")
		}
		return nil
	}
	if statusForLoaded(quantity, loaded) != status {
		switch {
		case loaded.GreaterThanOrEqual(quantity) && status != enum.BookingStatusFullyLoaded:
			return apperror.NewBadRequestError("A fully loaded booking must stay fully-loaded")
		case loaded.IsPositive() && (status == enum.BookingStatusPending || status == enum.BookingStatusConfirmed):
			return apperror.NewBadRequestError("A booking with loadings cannot return to " + status.String())
		case loaded.IsZero() && (status == enum.BookingStatusPartialLoaded || status == enum.BookingStatusFullyLoaded):
			return apperror.NewBadRequestError("A booking with no loadings cannot be marked " + status.String())
		}
	}
	return nil
}
