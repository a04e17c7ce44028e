package query_test

import (
	"reflect"
	"testing"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/query"
)

func TestCustomerStats(t *testing.T) {
	customers := []entity.Customer{
		{Name: "A", Balance: dec("-32500")},
		{Name: "B", Balance: dec("-500")},
		{Name: "C", Balance: dec("15000")},
		{Name: "D", Balance: dec("0")},
	}

	stats := query.CustomerStats(customers)

	if stats.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", stats.TotalCount)
	}
	// Receivable and payable are separate magnitudes, never netted.
	if !stats.TotalReceivable.Equal(dec("33000")) {
		t.Errorf("TotalReceivable = %s, want 33000", stats.TotalReceivable)
	}
	if !stats.TotalPayable.Equal(dec("15000")) {
		t.Errorf("TotalPayable = %s, want 15000", stats.TotalPayable)
	}
	if stats.DebtorCount != 2 {
		t.Errorf("DebtorCount = %d, want 2", stats.DebtorCount)
	}
	if !stats.AverageDebt.Equal(dec("16500")) {
		t.Errorf("AverageDebt = %s, want 16500", stats.AverageDebt)
	}
}

// No debtors means a defined zero average, not NaN or a panic.
func TestCustomerStatsNoDebtors(t *testing.T) {
	customers := []entity.Customer{
		{Name: "A", Balance: dec("100")},
		{Name: "B", Balance: dec("0")},
	}

	stats := query.CustomerStats(customers)
	if !stats.AverageDebt.IsZero() {
		t.Errorf("AverageDebt = %s, want 0", stats.AverageDebt)
	}
	if stats.DebtorCount != 0 {
		t.Errorf("DebtorCount = %d, want 0", stats.DebtorCount)
	}
}

func TestCustomerStatsEmpty(t *testing.T) {
	stats := query.CustomerStats(nil)
	if stats.TotalCount != 0 || !stats.TotalReceivable.IsZero() || !stats.TotalPayable.IsZero() || !stats.AverageDebt.IsZero() {
		t.Errorf("empty collection produced non-zero stats: %+v", stats)
	}
}

func TestSupplierStats(t *testing.T) {
	suppliers := []entity.Supplier{
		{Name: "Garba Farms", Agent: "Bello"},
		{Name: "Hassana Paddy", Agent: "Audu"},
		{Name: "Ibro Traders", Agent: "Audu"},
	}

	stats := query.SupplierStats(suppliers)

	if stats.TotalCount != 3 || stats.AgentCount != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", stats.TotalCount, stats.AgentCount)
	}
	want := []query.AgentCount{{Agent: "Audu", Count: 2}, {Agent: "Bello", Count: 1}}
	if !reflect.DeepEqual(stats.ByAgent, want) {
		t.Errorf("ByAgent = %v, want %v", stats.ByAgent, want)
	}
}
