package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/ledger"
	"github.com/milldesk/milldesk-api/internal/domain/query"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
	"github.com/milldesk/milldesk-api/pkg/apperror"
	"github.com/milldesk/milldesk-api/pkg/metrics"
	"github.com/milldesk/milldesk-api/pkg/pagination"
	"github.com/milldesk/milldesk-api/pkg/phone"
)

// CustomerService handles customer and customer-ledger operations. A
// customer's Balance is never written directly: it mirrors the running
// balance of the newest ledger entry, so every ledger mutation recomputes
// the chain and refreshes the mirror in the same call.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	ledgerRepo   repository.LedgerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, ledgerRepo repository.LedgerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, ledgerRepo: ledgerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name           string
	Phone          *string
	State          enum.State
	OpeningBalance decimal.Decimal
}

// UpdateCustomerInput represents the update customer input. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	Name  *string
	Phone *string
	State *enum.State
}

// ListCustomersInput carries the in-memory filter, sort and pagination
// parameters for a customer listing.
type ListCustomersInput struct {
	Search        string
	State         enum.State
	BalanceBucket query.BalanceBucket
	SortField     string
	SortDirection query.SortDirection
	Pagination    *pagination.PaginationParams
}

// CreateCustomer validates and creates a customer. A non-zero opening
// balance is realized as the customer's first ledger entry so the balance
// stays derived from the ledger.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	if !input.State.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "state", Message: "Unknown state"},
		})
	}
	if input.Phone != nil && *input.Phone != "" && !phone.Validate(*input.Phone) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "phone", Message: "Not a valid Nigerian phone number"},
		})
	}

	if err := s.checkDuplicate(ctx, name, input.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:    name,
		Phone:   input.Phone,
		State:   input.State,
		Balance: decimal.Zero,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if !input.OpeningBalance.IsZero() {
		if _, err := s.AddLedgerEntry(ctx, customer.ID, &AddLedgerEntryInput{
			Date:        time.Now(),
			Description: "Opening balance",
			Debit:       decimal.Max(input.OpeningBalance.Neg(), decimal.Zero),
			Credit:      decimal.Max(input.OpeningBalance, decimal.Zero),
		}); err != nil {
			return nil, err
		}
		return s.customerRepo.GetByID(ctx, customer.ID)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer applies a partial update after re-running phone validation
// and the duplicate check against every other customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name is required"},
			})
		}
		customer.Name = name
	}
	if input.State != nil {
		if !input.State.IsValid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "state", Message: "Unknown state"},
			})
		}
		customer.State = *input.State
	}
	if input.Phone != nil {
		if *input.Phone != "" && !phone.Validate(*input.Phone) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "phone", Message: "Not a valid Nigerian phone number"},
			})
		}
		customer.Phone = input.Phone
	}

	if err := s.checkDuplicate(ctx, customer.Name, customer.Phone, customer.ID); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers filters, sorts and paginates the customer collection in
// memory. Filtering happens before sorting; both are stable and leave the
// stored collection untouched.
func (s *CustomerService) ListCustomers(ctx context.Context, input *ListCustomersInput) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.FilterCustomers(customers, input.Search, input.State, input.BalanceBucket)
	sorted := query.SortCustomers(filtered, input.SortField, input.SortDirection)

	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Slice(sorted, params), nil
}

// CustomerStats aggregates headline numbers over the full collection,
// ignoring any active filters.
func (s *CustomerService) CustomerStats(ctx context.Context) (*query.CustomerStatistics, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := query.CustomerStats(customers)
	return &stats, nil
}

// checkDuplicate rejects a create or update whose normalized name or phone
// collides with another customer. Both collisions are reported when both
// occur.
func (s *CustomerService) checkDuplicate(ctx context.Context, name string, rawPhone *string, excludeID uuid.UUID) error {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return err
	}
	p := ""
	if rawPhone != nil {
		p = *rawPhone
	}
	result := query.CheckDuplicate(query.CustomerContacts(customers), name, p, excludeID)
	if !result.IsDuplicate {
		return nil
	}
	fields := make([]apperror.FieldError, 0, len(result.Violations))
	for _, v := range result.Violations {
		fields = append(fields, apperror.FieldError{Field: v.Field, Message: v.Message})
	}
	return apperror.NewConflictFieldsError("A customer with these details already exists", fields)
}

// AddLedgerEntryInput represents a single ledger posting. Exactly one of
// Debit and Credit should be positive.
type AddLedgerEntryInput struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// AddLedgerEntry appends a posting to a customer's ledger, recomputes every
// running balance in chronological order and refreshes the customer's
// mirrored balance. Backdated postings therefore update the running
// balances of every later entry.
func (s *CustomerService) AddLedgerEntry(ctx context.Context, customerID uuid.UUID, input *AddLedgerEntryInput) (*entity.LedgerEntry, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if input.Debit.IsNegative() || input.Credit.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Debit and credit must not be negative"},
		})
	}
	if input.Debit.IsZero() == input.Credit.IsZero() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Exactly one of debit and credit must be set"},
		})
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	entries, err := s.ledgerRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	entry := entity.LedgerEntry{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
		Debit:       input.Debit,
		Credit:      input.Credit,
		CreatedAt:   time.Now(),
	}
	entries = append(entries, entry)
	recomputed := ledger.Recompute(entries, decimal.Zero)

	if err := s.ledgerRepo.ReplaceForCustomer(ctx, customerID, recomputed); err != nil {
		return nil, err
	}

	customer.Balance = ledger.BalanceOf(customerID, recomputed)
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	metrics.LedgerEntriesTotal.Inc()

	for i := range recomputed {
		if recomputed[i].ID == entry.ID {
			return &recomputed[i], nil
		}
	}
	return &entry, nil
}

// GetLedger returns a customer's ledger entries in chronological order.
func (s *CustomerService) GetLedger(ctx context.Context, customerID uuid.UUID) ([]entity.LedgerEntry, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ledger.Chronological(entries), nil
}
