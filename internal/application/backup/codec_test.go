package backup_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/application/backup"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
)

func sampleCustomer(name string) entity.Customer {
	p := "08031234567"
	return entity.Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     &p,
		State:     enum.StateKano,
		Balance:   decimal.RequireFromString("-27800"),
		CreatedAt: time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 13, 11, 0, 0, 0, time.UTC),
	}
}

func TestImportCustomersRoundTrip(t *testing.T) {
	original := []entity.Customer{sampleCustomer("Alhaji Musa"), sampleCustomer("Mama Ngozi")}

	data, err := backup.ExportCustomersJSON(original)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	env, err := backup.ImportCustomers(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(env.Customers) != len(original) {
		t.Fatalf("got %d customers, want %d", len(env.Customers), len(original))
	}
	for i, got := range env.Customers {
		want := original[i]
		if got.ID != want.ID {
			t.Errorf("customer %d: id changed on round trip: %s != %s", i, got.ID, want.ID)
		}
		if !got.Balance.Equal(want.Balance) {
			t.Errorf("customer %d: balance changed: %s != %s", i, got.Balance, want.Balance)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("customer %d: createdAt changed: %s != %s", i, got.CreatedAt, want.CreatedAt)
		}
	}
}

func TestImportCustomersEnvelopeRoundTrip(t *testing.T) {
	cust := sampleCustomer("Alhaji Musa")
	env := &backup.Envelope{
		Customers: []entity.Customer{cust},
		LedgerEntries: []entity.LedgerEntry{{
			ID:             uuid.New(),
			CustomerID:     cust.ID,
			Date:           time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
			Description:    "50 bags local rice",
			Debit:          decimal.RequireFromString("32500"),
			RunningBalance: decimal.RequireFromString("-32500"),
		}},
		BookedStock: []entity.BookedStock{{
			ID:          uuid.New(),
			CustomerID:  cust.ID,
			OrderID:     "ORD-1A2B3C4D",
			ProductName: "Local Rice 50kg",
			Quantity:    decimal.NewFromInt(100),
			Unit:        "bags",
			Status:      enum.BookingStatusConfirmed,
			BookingDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		}},
	}

	data, err := backup.ExportFullJSON(env)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := backup.ImportCustomers(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.Version != backup.EnvelopeVersion {
		t.Errorf("version = %q, want %q", got.Version, backup.EnvelopeVersion)
	}
	if len(got.LedgerEntries) != 1 || len(got.BookedStock) != 1 {
		t.Fatalf("side collections not preserved: %d ledger entries, %d bookings",
			len(got.LedgerEntries), len(got.BookedStock))
	}
	if !got.LedgerEntries[0].RunningBalance.Equal(env.LedgerEntries[0].RunningBalance) {
		t.Errorf("running balance changed on round trip")
	}
}

func TestImportCustomersMissingFieldReportsPosition(t *testing.T) {
	good := sampleCustomer("Good Record")
	bad := sampleCustomer("Bad Record")
	bad.State = ""

	data, err := backup.ExportCustomersJSON([]entity.Customer{good, bad})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	_, err = backup.ImportCustomers(data)
	if err == nil {
		t.Fatal("expected import to fail for record missing state")
	}
	if !strings.Contains(err.Error(), "customer 2") {
		t.Errorf("error %q does not name the 1-based record position", err)
	}
	if !strings.Contains(err.Error(), "state") {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestImportCustomersRejectsUnknownFields(t *testing.T) {
	doc := `[{"id":"` + uuid.NewString() + `","name":"X","state":"Kano","balance":"0","bogus":true}]`
	if _, err := backup.ImportCustomers([]byte(doc)); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestImportCustomersRejectsUnsupportedVersion(t *testing.T) {
	doc := `{"version":"1.0","exportedAt":"2026-08-30T00:00:00Z","customers":[]}`
	_, err := backup.ImportCustomers([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestImportLegacyArrayLeavesSideCollectionsNil(t *testing.T) {
	data, err := backup.ExportCustomersJSON([]entity.Customer{sampleCustomer("Alhaji Musa")})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	env, err := backup.ImportCustomers(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if env.LedgerEntries != nil || env.Sales != nil || env.BookedStock != nil {
		t.Error("legacy array import must leave side collections nil so a restore preserves them")
	}
}

func TestImportEnvelopeDistinguishesEmptyFromAbsent(t *testing.T) {
	doc := `{"version":"2.0","exportedAt":"2026-08-30T00:00:00Z","customers":[],"sales":[]}`
	env, err := backup.ImportCustomers([]byte(doc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if env.Sales == nil {
		t.Error("explicit empty sales array decoded to nil")
	}
	if env.LedgerEntries != nil || env.BookedStock != nil {
		t.Error("collections absent from the document must decode to nil")
	}
}

func TestImportEnvelopeRequiresCustomers(t *testing.T) {
	doc := `{"version":"2.0","exportedAt":"2026-08-30T00:00:00Z"}`
	_, err := backup.ImportCustomers([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "customers") {
		t.Fatalf("expected missing customers error, got %v", err)
	}
}

func TestExportFullJSONWritesEmptyCollections(t *testing.T) {
	data, err := backup.ExportFullJSON(&backup.Envelope{Customers: []entity.Customer{sampleCustomer("Alhaji Musa")}})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, key := range []string{`"sales": []`, `"ledgerEntries": []`, `"bookedStock": []`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("full export missing %s; reimporting it would preserve stale rows", key)
		}
	}
}

func TestImportRejectsOrphanedSideRecord(t *testing.T) {
	env := &backup.Envelope{
		Customers: []entity.Customer{sampleCustomer("Alhaji Musa")},
		Sales: []entity.Sale{{
			ID:          uuid.New(),
			CustomerID:  uuid.New(),
			ProductName: "Local Rice 50kg",
			Quantity:    decimal.NewFromInt(10),
			UnitPrice:   decimal.NewFromInt(650),
			Amount:      decimal.NewFromInt(6500),
			Date:        time.Now(),
		}},
	}
	data, err := backup.ExportFullJSON(env)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	_, err = backup.ImportCustomers(data)
	if err == nil || !strings.Contains(err.Error(), "unknown customer") {
		t.Fatalf("expected unknown customer error, got %v", err)
	}
}

func TestImportRejectsOverloadedBooking(t *testing.T) {
	cust := sampleCustomer("Alhaji Musa")
	env := &backup.Envelope{
		Customers: []entity.Customer{cust},
		BookedStock: []entity.BookedStock{{
			ID:             uuid.New(),
			CustomerID:     cust.ID,
			OrderID:        "ORD-DEADBEEF",
			ProductName:    "Local Rice 50kg",
			Quantity:       decimal.NewFromInt(10),
			QuantityLoaded: decimal.NewFromInt(12),
			Unit:           "bags",
			Status:         enum.BookingStatusPartialLoaded,
			BookingDate:    time.Now(),
		}},
	}
	data, err := backup.ExportFullJSON(env)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	_, err = backup.ImportCustomers(data)
	if err == nil || !strings.Contains(err.Error(), "quantityLoaded") {
		t.Fatalf("expected quantityLoaded validation error, got %v", err)
	}
}

func TestExportCustomersCSVHeader(t *testing.T) {
	data, err := backup.ExportCustomersCSV([]entity.Customer{sampleCustomer("Alhaji Musa")})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	wantHeader := `"ID","Name","Phone","State","Balance","Created At","Updated At"`
	if strings.TrimSpace(lines[0]) != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if !strings.Contains(lines[1], "0803 123 4567") {
		t.Errorf("row %q does not contain display-formatted phone", lines[1])
	}
}

func TestExportCustomersCSVQuotesEveryField(t *testing.T) {
	c := sampleCustomer(`Musa "Mai Shinkafa" & Sons`)
	data, err := backup.ExportCustomersCSV([]entity.Customer{c})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	row := lines[1]
	if !strings.HasPrefix(row, `"`) || !strings.HasSuffix(row, `"`) {
		t.Errorf("row %q is not fully quoted", row)
	}
	if !strings.Contains(row, `"Musa ""Mai Shinkafa"" & Sons"`) {
		t.Errorf("row %q does not double embedded quotes", row)
	}
	if !strings.Contains(row, `"`+string(c.State)+`"`) {
		t.Errorf("row %q leaves the state unquoted", row)
	}
}

func TestFileNames(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	if got := backup.FileName("customers", at, "json"); got != "customers_2026-08-30.json" {
		t.Errorf("FileName = %q", got)
	}
	if got := backup.FullBackupFileName("customers", at); got != "customers_full_2026-08-30.json" {
		t.Errorf("FullBackupFileName = %q", got)
	}
}
