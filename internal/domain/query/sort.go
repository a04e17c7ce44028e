package query

import (
	"sort"
	"strings"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
)

// SortDirection orders a sort ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Customer sort fields recognized by SortCustomers.
const (
	CustomerSortName    = "name"
	CustomerSortState   = "state"
	CustomerSortBalance = "balance"
	CustomerSortCreated = "createdAt"
)

// Supplier sort fields recognized by SortSuppliers.
const (
	SupplierSortName    = "name"
	SupplierSortAgent   = "agent"
	SupplierSortCreated = "createdAt"
)

// The console re-sorts on every column click and expects records with equal
// keys to keep their relative order, so both sort functions use a stable
// sort and return a fresh slice without touching the input.

// SortCustomers returns customers ordered by field and direction. Strings
// compare case-insensitively, balances by numeric value. An unknown field
// leaves the order unchanged.
func SortCustomers(records []entity.Customer, field string, dir SortDirection) []entity.Customer {
	out := make([]entity.Customer, len(records))
	copy(out, records)

	var less func(a, b entity.Customer) bool
	switch field {
	case CustomerSortName:
		less = func(a, b entity.Customer) bool { return lessString(a.Name, b.Name, dir) }
	case CustomerSortState:
		less = func(a, b entity.Customer) bool { return lessString(a.State.String(), b.State.String(), dir) }
	case CustomerSortBalance:
		less = func(a, b entity.Customer) bool {
			if dir == SortDesc {
				return a.Balance.GreaterThan(b.Balance)
			}
			return a.Balance.LessThan(b.Balance)
		}
	case CustomerSortCreated:
		less = func(a, b entity.Customer) bool {
			if dir == SortDesc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortSuppliers returns suppliers ordered by field and direction.
func SortSuppliers(records []entity.Supplier, field string, dir SortDirection) []entity.Supplier {
	out := make([]entity.Supplier, len(records))
	copy(out, records)

	var less func(a, b entity.Supplier) bool
	switch field {
	case SupplierSortName:
		less = func(a, b entity.Supplier) bool { return lessString(a.Name, b.Name, dir) }
	case SupplierSortAgent:
		less = func(a, b entity.Supplier) bool { return lessString(a.Agent, b.Agent, dir) }
	case SupplierSortCreated:
		less = func(a, b entity.Supplier) bool {
			if dir == SortDesc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// lessString compares case-insensitively, honoring direction.
func lessString(a, b string, dir SortDirection) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if dir == SortDesc {
		return a > b
	}
	return a < b
}
