package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations.
// Filtering, sorting and statistics run in memory over the full collection,
// so List returns everything; the console's collection sizes make that the
// simpler contract.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Customer, error)
}

// RestoreSet carries the collections a backup restore will write. A nil side
// collection was absent from the imported document and must be preserved.
type RestoreSet struct {
	Customers     []entity.Customer
	LedgerEntries []entity.LedgerEntry
	Sales         []entity.Sale
	BookedStock   []entity.BookedStock
}

// RestoreRepository applies a validated backup document. The whole restore
// runs as one unit: either every collection in the set is written or none is.
type RestoreRepository interface {
	Restore(ctx context.Context, set *RestoreSet) error
}

// LedgerRepository defines the interface for ledger entry operations. The
// ledger is append-only from the console's point of view; corrections are
// new entries.
type LedgerRepository interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.LedgerEntry, error)
	ListAll(ctx context.Context) ([]entity.LedgerEntry, error)
	// ReplaceForCustomer rewrites a customer's entries in one transaction,
	// used when running balances are recomputed.
	ReplaceForCustomer(ctx context.Context, customerID uuid.UUID, entries []entity.LedgerEntry) error
}

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Supplier, error)
}

// BookingRepository defines the interface for booked-stock operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.BookedStock) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BookedStock, error)
	Update(ctx context.Context, booking *entity.BookedStock) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.BookedStock, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.BookedStock, error)
}

// LoadingRepository defines the interface for loading (dispatch) records.
// Waybills are immutable once issued, so there is no update.
type LoadingRepository interface {
	Create(ctx context.Context, loading *entity.Loading) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Loading, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, from, to *time.Time) ([]entity.Loading, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Loading, error)
}

// PaddyTruckRepository defines the interface for paddy receiving records.
type PaddyTruckRepository interface {
	Create(ctx context.Context, truck *entity.PaddyTruck) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaddyTruck, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, from, to *time.Time) ([]entity.PaddyTruck, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]entity.PaddyTruck, error)
}

// SaleRepository defines the interface for sale records. Sales post ledger
// debits when recorded, so they are never deleted outside a full restore.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, from, to *time.Time) ([]entity.Sale, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error)
}
