package query_test

import (
	"reflect"
	"testing"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/query"
	"github.com/shopspring/decimal"
)

func ptr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleCustomers() []entity.Customer {
	return []entity.Customer{
		{Name: "Alhaji Musa", Phone: ptr("0803-123-4567"), State: enum.StateKano, Balance: dec("-32500")},
		{Name: "Bintu Rice Stores", Phone: ptr("08031239999"), State: enum.StateLagos, Balance: dec("15000")},
		{Name: "Chukwu & Sons", State: enum.StateEnugu, Balance: dec("0")},
		{Name: "Danladi Grains", Phone: ptr("2347010001111"), State: enum.StateKano, Balance: dec("-500")},
	}
}

func names(customers []entity.Customer) []string {
	out := make([]string, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.Name)
	}
	return out
}

func TestFilterCustomersSearch(t *testing.T) {
	customers := sampleCustomers()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty term matches everything", "", []string{"Alhaji Musa", "Bintu Rice Stores", "Chukwu & Sons", "Danladi Grains"}},
		{"case-insensitive name substring", "MUSA", []string{"Alhaji Musa"}},
		{"raw phone substring", "123-45", []string{"Alhaji Musa"}},
		// The raw phone text is searched unnormalized, so "0803123" only
		// hits the record whose literal phone contains that digit run.
		{"phone digits substring", "0803123", []string{"Bintu Rice Stores"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.FilterCustomers(customers, tt.search, "", query.BalanceBucketAll)
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("search %q = %v, want %v", tt.search, names(got), tt.want)
			}
		})
	}
}

func TestFilterCustomersState(t *testing.T) {
	customers := sampleCustomers()

	got := query.FilterCustomers(customers, "", enum.StateKano, query.BalanceBucketAll)
	want := []string{"Alhaji Musa", "Danladi Grains"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("state filter = %v, want %v", names(got), want)
	}

	// "all" and the empty string are both no-ops.
	if got := query.FilterCustomers(customers, "", "all", query.BalanceBucketAll); len(got) != len(customers) {
		t.Errorf(`state "all" filtered to %d records, want %d`, len(got), len(customers))
	}
}

func TestFilterCustomersBalanceBuckets(t *testing.T) {
	customers := sampleCustomers()

	tests := []struct {
		bucket query.BalanceBucket
		want   []string
	}{
		{query.BalanceBucketNegative, []string{"Alhaji Musa", "Danladi Grains"}},
		{query.BalanceBucketPositive, []string{"Bintu Rice Stores"}},
		{query.BalanceBucketZero, []string{"Chukwu & Sons"}},
		{query.BalanceBucketAll, []string{"Alhaji Musa", "Bintu Rice Stores", "Chukwu & Sons", "Danladi Grains"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			got := query.FilterCustomers(customers, "", "", tt.bucket)
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("bucket %s = %v, want %v", tt.bucket, names(got), tt.want)
			}
		})
	}
}

// Filtering an already-filtered collection with the same criteria is a no-op.
func TestFilterCustomersIdempotent(t *testing.T) {
	customers := sampleCustomers()

	once := query.FilterCustomers(customers, "a", enum.StateKano, query.BalanceBucketNegative)
	twice := query.FilterCustomers(once, "a", enum.StateKano, query.BalanceBucketNegative)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter not idempotent: %v then %v", names(once), names(twice))
	}
}

// Filters are subset restrictions composed by AND, so application order
// cannot change the result.
func TestFilterCustomersCommutative(t *testing.T) {
	customers := sampleCustomers()

	stateFirst := query.FilterCustomers(
		query.FilterCustomers(customers, "", enum.StateKano, query.BalanceBucketAll),
		"", "", query.BalanceBucketNegative)
	bucketFirst := query.FilterCustomers(
		query.FilterCustomers(customers, "", "", query.BalanceBucketNegative),
		"", enum.StateKano, query.BalanceBucketAll)

	if !reflect.DeepEqual(stateFirst, bucketFirst) {
		t.Errorf("filter order changed result: %v vs %v", names(stateFirst), names(bucketFirst))
	}
}

func TestFilterSuppliers(t *testing.T) {
	suppliers := []entity.Supplier{
		{Name: "Garba Farms", Phone: ptr("08030001111"), Agent: "Audu"},
		{Name: "Hassana Paddy", Agent: "Audu"},
		{Name: "Ibro Traders", Phone: ptr("0705 222 3333"), Agent: "Bello"},
	}

	got := query.FilterSuppliers(suppliers, "", "Audu")
	if len(got) != 2 {
		t.Fatalf("agent filter returned %d suppliers, want 2", len(got))
	}

	got = query.FilterSuppliers(suppliers, "222", "all")
	if len(got) != 1 || got[0].Name != "Ibro Traders" {
		t.Errorf("phone search = %v, want [Ibro Traders]", got)
	}
}
