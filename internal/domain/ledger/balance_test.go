package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBalanceOfNoEntries(t *testing.T) {
	id := uuid.New()
	other := uuid.New()
	entries := []entity.LedgerEntry{
		{CustomerID: other, Date: date(2024, 1, 10), RunningBalance: dec("100")},
	}

	if got := ledger.BalanceOf(id, entries); !got.IsZero() {
		t.Errorf("BalanceOf with no entries = %s, want 0", got)
	}
	if got := ledger.BalanceOf(id, nil); !got.IsZero() {
		t.Errorf("BalanceOf(nil) = %s, want 0", got)
	}
}

// The balance is the running balance of the latest entry by date, not the
// latest by insertion position: entries dated Jan 13 (32500) and Jan 12
// (27800) must yield 32500 in any array order.
func TestBalanceOfLatestDateWins(t *testing.T) {
	c1 := uuid.New()
	jan13 := entity.LedgerEntry{
		CustomerID:     c1,
		Date:           date(2024, 1, 13),
		Debit:          dec("32500"),
		RunningBalance: dec("32500"),
		CreatedAt:      date(2024, 1, 13),
	}
	jan12 := entity.LedgerEntry{
		CustomerID:     c1,
		Date:           date(2024, 1, 12),
		Credit:         dec("4700"),
		RunningBalance: dec("27800"),
		CreatedAt:      date(2024, 1, 14), // recorded late
	}

	orders := [][]entity.LedgerEntry{
		{jan13, jan12},
		{jan12, jan13},
	}
	for i, entries := range orders {
		got := ledger.BalanceOf(c1, entries)
		if !got.Equal(dec("32500")) {
			t.Errorf("order %d: BalanceOf = %s, want 32500", i, got)
		}
	}
}

func TestBalanceOfTieBrokenByCreatedAt(t *testing.T) {
	c1 := uuid.New()
	sameDay := date(2024, 3, 5)
	first := entity.LedgerEntry{
		CustomerID:     c1,
		Date:           sameDay,
		RunningBalance: dec("-1000"),
		CreatedAt:      time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
	}
	second := entity.LedgerEntry{
		CustomerID:     c1,
		Date:           sameDay,
		RunningBalance: dec("-250"),
		CreatedAt:      time.Date(2024, 3, 5, 16, 30, 0, 0, time.UTC),
	}

	got := ledger.BalanceOf(c1, []entity.LedgerEntry{second, first})
	if !got.Equal(dec("-250")) {
		t.Errorf("BalanceOf = %s, want -250 (latest CreatedAt wins the tie)", got)
	}
}

func TestBalanceOfIgnoresOtherCustomers(t *testing.T) {
	c1 := uuid.New()
	c2 := uuid.New()
	entries := []entity.LedgerEntry{
		{CustomerID: c1, Date: date(2024, 2, 1), RunningBalance: dec("500")},
		{CustomerID: c2, Date: date(2024, 2, 2), RunningBalance: dec("9999")},
	}

	if got := ledger.BalanceOf(c1, entries); !got.Equal(dec("500")) {
		t.Errorf("BalanceOf = %s, want 500", got)
	}
}

func TestRecompute(t *testing.T) {
	c1 := uuid.New()
	entries := []entity.LedgerEntry{
		// Inserted out of order on purpose.
		{CustomerID: c1, Date: date(2024, 1, 13), Debit: dec("32500"), CreatedAt: date(2024, 1, 13)},
		{CustomerID: c1, Date: date(2024, 1, 12), Credit: dec("4700"), CreatedAt: date(2024, 1, 14)},
		{CustomerID: c1, Date: date(2024, 1, 10), Debit: dec("27800"), CreatedAt: date(2024, 1, 10)},
	}

	got := ledger.Recompute(entries, decimal.Zero)

	want := []string{"-27800", "-23100", "-55600"}
	if len(got) != len(want) {
		t.Fatalf("Recompute returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if !got[i].RunningBalance.Equal(dec(w)) {
			t.Errorf("entry %d running balance = %s, want %s", i, got[i].RunningBalance, w)
		}
	}

	// Input must be left untouched.
	for i := range entries {
		if !entries[i].RunningBalance.IsZero() {
			t.Errorf("input entry %d mutated: running balance %s", i, entries[i].RunningBalance)
		}
	}
}

func TestRecomputeWithOpeningBalance(t *testing.T) {
	c1 := uuid.New()
	entries := []entity.LedgerEntry{
		{CustomerID: c1, Date: date(2024, 5, 1), Credit: dec("10000")},
	}

	got := ledger.Recompute(entries, dec("-4000"))
	if !got[0].RunningBalance.Equal(dec("6000")) {
		t.Errorf("running balance = %s, want 6000", got[0].RunningBalance)
	}
}

func TestChronologicalDoesNotMutate(t *testing.T) {
	c1 := uuid.New()
	entries := []entity.LedgerEntry{
		{CustomerID: c1, Date: date(2024, 6, 2)},
		{CustomerID: c1, Date: date(2024, 6, 1)},
	}

	ordered := ledger.Chronological(entries)
	if !ordered[0].Date.Equal(date(2024, 6, 1)) {
		t.Errorf("first ordered entry dated %v, want 2024-06-01", ordered[0].Date)
	}
	if !entries[0].Date.Equal(date(2024, 6, 2)) {
		t.Errorf("input slice was reordered")
	}
}
