// Package ledger holds the pure balance arithmetic for customer accounts.
// Every function here is a side-effect-free transformation over snapshots;
// persistence is the caller's concern.
package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Chronological returns a fresh slice of entries ordered ascending by
// transaction date, ties broken by ascending creation timestamp. The input
// is never mutated.
func Chronological(entries []entity.LedgerEntry) []entity.LedgerEntry {
	out := make([]entity.LedgerEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// BalanceOf returns the current balance of a customer as the running balance
// of the chronologically last entry belonging to customerID. The running
// balance is trusted as stored, not recomputed from debits and credits. A
// customer with no entries has a zero balance; that is not an error.
func BalanceOf(customerID uuid.UUID, entries []entity.LedgerEntry) decimal.Decimal {
	var own []entity.LedgerEntry
	for _, e := range entries {
		if e.CustomerID == customerID {
			own = append(own, e)
		}
	}
	if len(own) == 0 {
		return decimal.Zero
	}
	own = Chronological(own)
	return own[len(own)-1].RunningBalance
}

// Recompute reassigns every running balance in chronological order starting
// from opening, applying credit minus debit per entry. This is the appending
// side of the invariant BalanceOf relies on: after any insert the full set is
// resorted and rewritten, never patched in the middle. The returned slice is
// the chronologically ordered copy; the input is untouched.
func Recompute(entries []entity.LedgerEntry, opening decimal.Decimal) []entity.LedgerEntry {
	ordered := Chronological(entries)
	running := opening
	for i := range ordered {
		running = running.Add(ordered[i].Credit).Sub(ordered[i].Debit)
		ordered[i].RunningBalance = running
	}
	return ordered
}
