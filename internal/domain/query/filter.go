// Package query implements the console's in-memory list operations:
// filtering, sorting, statistics and duplicate detection over collection
// snapshots. Everything here is pure: inputs are never mutated and the same
// input always produces the same output.
package query

import (
	"strings"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
)

// BalanceBucket partitions customers on the sign of their balance.
type BalanceBucket string

const (
	BalanceBucketAll      BalanceBucket = "all"
	BalanceBucketPositive BalanceBucket = "positive"
	BalanceBucketNegative BalanceBucket = "negative"
	BalanceBucketZero     BalanceBucket = "zero"
)

// FilterAll is the no-op value for string-typed categorical filters.
const FilterAll = "all"

// matchesSearch reports whether term occurs case-insensitively in the name
// or the raw (unnormalized) phone text. An empty term matches everything.
func matchesSearch(term, name string, phone *string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(name), term) {
		return true
	}
	return phone != nil && strings.Contains(strings.ToLower(*phone), term)
}

// FilterCustomers restricts customers by free-text search, state and balance
// bucket. Filters compose by AND and each is a pure subset restriction, so
// application order is irrelevant and the whole operation is idempotent.
func FilterCustomers(customers []entity.Customer, search string, state enum.State, bucket BalanceBucket) []entity.Customer {
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if !matchesSearch(search, c.Name, c.Phone) {
			continue
		}
		if state != "" && state != FilterAll && c.State != state {
			continue
		}
		if !inBucket(c, bucket) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// inBucket uses exact sign comparison against zero. Balances are fixed-point
// decimals, so there is no epsilon tolerance to worry about.
func inBucket(c entity.Customer, bucket BalanceBucket) bool {
	switch bucket {
	case BalanceBucketPositive:
		return c.Balance.Sign() > 0
	case BalanceBucketNegative:
		return c.Balance.Sign() < 0
	case BalanceBucketZero:
		return c.Balance.Sign() == 0
	default:
		return true
	}
}

// FilterSuppliers restricts suppliers by free-text search and agent.
func FilterSuppliers(suppliers []entity.Supplier, search, agent string) []entity.Supplier {
	out := make([]entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if !matchesSearch(search, s.Name, s.Phone) {
			continue
		}
		if agent != "" && agent != FilterAll && s.Agent != agent {
			continue
		}
		out = append(out, s)
	}
	return out
}
