package query_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/query"
)

func TestSortCustomersByName(t *testing.T) {
	customers := []entity.Customer{
		{Name: "danladi Grains"},
		{Name: "Alhaji Musa"},
		{Name: "chukwu & Sons"},
	}

	asc := query.SortCustomers(customers, query.CustomerSortName, query.SortAsc)
	if got, want := names(asc), []string{"Alhaji Musa", "chukwu & Sons", "danladi Grains"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc by name = %v, want %v (case-insensitive)", got, want)
	}

	desc := query.SortCustomers(customers, query.CustomerSortName, query.SortDesc)
	if got, want := names(desc), []string{"danladi Grains", "chukwu & Sons", "Alhaji Musa"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc by name = %v, want %v", got, want)
	}

	// Input order untouched.
	if customers[0].Name != "danladi Grains" {
		t.Errorf("input slice was mutated")
	}
}

func TestSortCustomersByBalance(t *testing.T) {
	customers := []entity.Customer{
		{Name: "A", Balance: dec("100")},
		{Name: "B", Balance: dec("-32500")},
		{Name: "C", Balance: dec("0")},
	}

	got := query.SortCustomers(customers, query.CustomerSortBalance, query.SortAsc)
	if want := []string{"B", "C", "A"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("asc by balance = %v, want %v", names(got), want)
	}
}

// Repeated sorting with identical keys must preserve relative order: the
// console relies on stable re-sorts across repeated clicks on a column.
func TestSortCustomersStable(t *testing.T) {
	customers := []entity.Customer{
		{Name: "Equal", State: enum.StateKano, Balance: dec("1")},
		{Name: "equal", State: enum.StateLagos, Balance: dec("2")},
		{Name: "EQUAL", State: enum.StateEdo, Balance: dec("3")},
	}

	once := query.SortCustomers(customers, query.CustomerSortName, query.SortAsc)
	twice := query.SortCustomers(once, query.CustomerSortName, query.SortAsc)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sort not idempotent under equal keys")
	}
	// All names compare equal case-insensitively, so original order stands.
	if want := []string{"Equal", "equal", "EQUAL"}; !reflect.DeepEqual(names(once), want) {
		t.Errorf("equal keys reordered: %v, want %v", names(once), want)
	}
}

func TestSortCustomersUnknownField(t *testing.T) {
	customers := []entity.Customer{{Name: "B"}, {Name: "A"}}
	got := query.SortCustomers(customers, "nope", query.SortAsc)
	if want := []string{"B", "A"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("unknown field reordered records: %v", names(got))
	}
}

func TestSortSuppliers(t *testing.T) {
	now := time.Now()
	suppliers := []entity.Supplier{
		{Name: "Garba Farms", Agent: "Bello", CreatedAt: now.Add(-time.Hour)},
		{Name: "Hassana Paddy", Agent: "audu", CreatedAt: now},
	}

	byAgent := query.SortSuppliers(suppliers, query.SupplierSortAgent, query.SortAsc)
	if byAgent[0].Name != "Hassana Paddy" {
		t.Errorf("agent asc: first = %s, want Hassana Paddy", byAgent[0].Name)
	}

	byCreated := query.SortSuppliers(suppliers, query.SupplierSortCreated, query.SortDesc)
	if byCreated[0].Name != "Hassana Paddy" {
		t.Errorf("createdAt desc: first = %s, want Hassana Paddy", byCreated[0].Name)
	}
}
