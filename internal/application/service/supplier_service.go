package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/query"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
	"github.com/milldesk/milldesk-api/pkg/apperror"
	"github.com/milldesk/milldesk-api/pkg/pagination"
	"github.com/milldesk/milldesk-api/pkg/phone"
)

// SupplierService handles paddy supplier operations.
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name  string
	Phone *string
	Agent string
	Notes *string
}

// UpdateSupplierInput represents the update supplier input. Nil fields are
// left unchanged.
type UpdateSupplierInput struct {
	Name  *string
	Phone *string
	Agent *string
	Notes *string
}

// ListSuppliersInput carries filter, sort and pagination parameters.
type ListSuppliersInput struct {
	Search        string
	Agent         string
	SortField     string
	SortDirection query.SortDirection
	Pagination    *pagination.PaginationParams
}

// CreateSupplier validates and creates a supplier. Suppliers share the
// duplicate rules with customers: normalized name and phone must be unique
// within the supplier collection.
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
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

	supplier := &entity.Supplier{
		Name:  name,
		Phone: input.Phone,
		Agent: strings.TrimSpace(input.Agent),
		Notes: input.Notes,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier applies a partial update with the same validations as
// create.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.GetSupplier(ctx, id)
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
		supplier.Name = name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !phone.Validate(*input.Phone) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "phone", Message: "Not a valid Nigerian phone number"},
			})
		}
		supplier.Phone = input.Phone
	}
	if input.Agent != nil {
		supplier.Agent = strings.TrimSpace(*input.Agent)
	}
	if input.Notes != nil {
		supplier.Notes = input.Notes
	}

	if err := s.checkDuplicate(ctx, supplier.Name, supplier.Phone, supplier.ID); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier soft-deletes a supplier.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSupplier(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers filters, sorts and paginates the supplier collection in
// memory.
func (s *SupplierService) ListSuppliers(ctx context.Context, input *ListSuppliersInput) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.FilterSuppliers(suppliers, input.Search, input.Agent)
	sorted := query.SortSuppliers(filtered, input.SortField, input.SortDirection)

	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Slice(sorted, params), nil
}

// SupplierStats aggregates supplier counts and per-agent breakdowns.
func (s *SupplierService) SupplierStats(ctx context.Context) (*query.SupplierStatistics, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := query.SupplierStats(suppliers)
	return &stats, nil
}

func (s *SupplierService) checkDuplicate(ctx context.Context, name string, rawPhone *string, excludeID uuid.UUID) error {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return err
	}
	p := ""
	if rawPhone != nil {
		p = *rawPhone
	}
	result := query.CheckDuplicate(query.SupplierContacts(suppliers), name, p, excludeID)
	if !result.IsDuplicate {
		return nil
	}
	fields := make([]apperror.FieldError, 0, len(result.Violations))
	for _, v := range result.Violations {
		fields = append(fields, apperror.FieldError{Field: v.Field, Message: v.Message})
	}
	return apperror.NewConflictFieldsError("A supplier with these details already exists", fields)
}
