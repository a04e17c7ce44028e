package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/enum"
)

type memSaleRepo struct {
	sales     []entity.Sale
	createErr error
}

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) List(_ context.Context, _, _ *time.Time) ([]entity.Sale, error) {
	return append([]entity.Sale(nil), r.sales...), nil
}

func (r *memSaleRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func newSaleServiceForTest(saleRepo *memSaleRepo) (*SaleService, *memCustomerRepo, *memLedgerRepo) {
	customerService, customers, ledgers := newCustomerServiceForTest()
	return NewSaleService(saleRepo, customerService), customers, ledgers
}

func seedCustomer(t *testing.T, customers *memCustomerRepo) uuid.UUID {
	t.Helper()
	c := &entity.Customer{Name: "Alhaji Musa", State: enum.StateKano, Balance: decimal.Zero}
	if err := customers.Create(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	return c.ID
}

func TestRecordSaleDebitsLedger(t *testing.T) {
	saleRepo := &memSaleRepo{}
	svc, customers, ledgers := newSaleServiceForTest(saleRepo)
	customerID := seedCustomer(t, customers)

	sale, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		CustomerID:  customerID,
		ProductName: "Local Rice 50kg",
		Quantity:    qty("50"),
		Unit:        "bags",
		UnitPrice:   qty("650"),
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if !sale.Amount.Equal(qty("32500")) {
		t.Errorf("amount = %s, want 32500", sale.Amount)
	}

	entries, _ := ledgers.ListByCustomer(context.Background(), customerID)
	if len(entries) != 1 {
		t.Fatalf("got %d ledger entries, want 1", len(entries))
	}
	if !entries[0].Debit.Equal(sale.Amount) {
		t.Errorf("debit = %s, want %s", entries[0].Debit, sale.Amount)
	}
	got, _ := customers.GetByID(context.Background(), customerID)
	if !got.Balance.Equal(qty("-32500")) {
		t.Errorf("balance = %s, want -32500", got.Balance)
	}
}

func TestRecordSaleFailedInsertLeavesLedgerUntouched(t *testing.T) {
	saleRepo := &memSaleRepo{createErr: errors.New("insert failed")}
	svc, customers, ledgers := newSaleServiceForTest(saleRepo)
	customerID := seedCustomer(t, customers)

	_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		CustomerID:  customerID,
		ProductName: "Local Rice 50kg",
		Quantity:    qty("50"),
		UnitPrice:   qty("650"),
	})
	if err == nil {
		t.Fatal("expected RecordSale to fail")
	}
	if entries, _ := ledgers.ListByCustomer(context.Background(), customerID); len(entries) != 0 {
		t.Errorf("failed sale posted %d ledger entries; customer is charged for a sale that was never recorded", len(entries))
	}
	got, _ := customers.GetByID(context.Background(), customerID)
	if !got.Balance.IsZero() {
		t.Errorf("failed sale moved the balance to %s", got.Balance)
	}
}

func TestRecordSaleUnknownCustomerWritesNothing(t *testing.T) {
	saleRepo := &memSaleRepo{}
	svc, _, _ := newSaleServiceForTest(saleRepo)

	_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		CustomerID:  uuid.New(),
		ProductName: "Local Rice 50kg",
		Quantity:    qty("1"),
		UnitPrice:   qty("650"),
	})
	if err == nil {
		t.Fatal("expected RecordSale to fail for unknown customer")
	}
	if len(saleRepo.sales) != 0 {
		t.Errorf("unknown customer produced %d sale rows", len(saleRepo.sales))
	}
}
