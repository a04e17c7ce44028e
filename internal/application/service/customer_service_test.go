package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
)

// In-memory repositories for service tests.

type memCustomerRepo struct {
	customers map[uuid.UUID]entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[uuid.UUID]entity.Customer)}
}

func (r *memCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = *customer
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

type memLedgerRepo struct {
	entries map[uuid.UUID][]entity.LedgerEntry
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{entries: make(map[uuid.UUID][]entity.LedgerEntry)}
}

func (r *memLedgerRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.LedgerEntry, error) {
	return append([]entity.LedgerEntry(nil), r.entries[customerID]...), nil
}

func (r *memLedgerRepo) ListAll(_ context.Context) ([]entity.LedgerEntry, error) {
	var out []entity.LedgerEntry
	for _, es := range r.entries {
		out = append(out, es...)
	}
	return out, nil
}

func (r *memLedgerRepo) ReplaceForCustomer(_ context.Context, customerID uuid.UUID, entries []entity.LedgerEntry) error {
	r.entries[customerID] = append([]entity.LedgerEntry(nil), entries...)
	return nil
}

func newCustomerServiceForTest() (*CustomerService, *memCustomerRepo, *memLedgerRepo) {
	customers := newMemCustomerRepo()
	ledgers := newMemLedgerRepo()
	return NewCustomerService(customers, ledgers), customers, ledgers
}

func TestCreateCustomerOpeningBalancePostsLedgerEntry(t *testing.T) {
	tests := []struct {
		name        string
		opening     string
		wantDebit   string
		wantCredit  string
		wantBalance string
	}{
		{"receivable opening balance", "-27800", "27800", "0", "-27800"},
		{"credit opening balance", "5000", "0", "5000", "5000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, ledgers := newCustomerServiceForTest()
			customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
				Name:           "Alhaji Musa",
				State:          enum.StateKano,
				OpeningBalance: qty(tt.opening),
			})
			if err != nil {
				t.Fatalf("CreateCustomer: %v", err)
			}

			entries, _ := ledgers.ListByCustomer(context.Background(), customer.ID)
			if len(entries) != 1 {
				t.Fatalf("got %d ledger entries, want 1", len(entries))
			}
			e := entries[0]
			if e.Description != "Opening balance" {
				t.Errorf("description = %q", e.Description)
			}
			if !e.Debit.Equal(qty(tt.wantDebit)) || !e.Credit.Equal(qty(tt.wantCredit)) {
				t.Errorf("posted debit %s / credit %s, want %s / %s",
					e.Debit, e.Credit, tt.wantDebit, tt.wantCredit)
			}
			if !customer.Balance.Equal(qty(tt.wantBalance)) {
				t.Errorf("balance = %s, want %s", customer.Balance, tt.wantBalance)
			}
		})
	}
}

func TestCreateCustomerZeroOpeningBalanceSkipsLedger(t *testing.T) {
	svc, _, ledgers := newCustomerServiceForTest()
	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  "Mama Ngozi",
		State: enum.StateLagos,
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if entries, _ := ledgers.ListByCustomer(context.Background(), customer.ID); len(entries) != 0 {
		t.Errorf("zero opening balance posted %d ledger entries", len(entries))
	}
	if !customer.Balance.IsZero() {
		t.Errorf("balance = %s, want 0", customer.Balance)
	}
}

func TestAddLedgerEntryRejectsBothOrNeither(t *testing.T) {
	svc, customers, _ := newCustomerServiceForTest()
	c := &entity.Customer{Name: "Alhaji Musa", State: enum.StateKano, Balance: decimal.Zero}
	if err := customers.Create(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	_, err := svc.AddLedgerEntry(context.Background(), c.ID, &AddLedgerEntryInput{
		Description: "both sides", Debit: qty("10"), Credit: qty("10"),
	})
	if err == nil {
		t.Error("entry with both debit and credit was accepted")
	}
	_, err = svc.AddLedgerEntry(context.Background(), c.ID, &AddLedgerEntryInput{
		Description: "neither side",
	})
	if err == nil {
		t.Error("entry with neither debit nor credit was accepted")
	}
}
