package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/enum"
	"github.com/milldesk/milldesk-api/internal/domain/query"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
)

// DashboardService provides the console's landing-page numbers.
type DashboardService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	bookingRepo  repository.BookingRepository
	loadingRepo  repository.LoadingRepository
	paddyRepo    repository.PaddyTruckRepository
	saleRepo     repository.SaleRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	bookingRepo repository.BookingRepository,
	loadingRepo repository.LoadingRepository,
	paddyRepo repository.PaddyTruckRepository,
	saleRepo repository.SaleRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		bookingRepo:  bookingRepo,
		loadingRepo:  loadingRepo,
		paddyRepo:    paddyRepo,
		saleRepo:     saleRepo,
	}
}

// DashboardStats represents the headline numbers shown on the console's
// dashboard. Receivable and payable are reported as separate magnitudes,
// never netted against each other.
type DashboardStats struct {
	Customers       query.CustomerStatistics `json:"customers"`
	Suppliers       query.SupplierStatistics `json:"suppliers"`
	OpenBookings    int                      `json:"openBookings"`
	PendingQuantity decimal.Decimal          `json:"pendingQuantity"`
	TodayLoadings   int                      `json:"todayLoadings"`
	TodayPaddy      int                      `json:"todayPaddyTrucks"`
	TodayPaddyKg    decimal.Decimal          `json:"todayPaddyKg"`
	MonthSales      decimal.Decimal          `json:"monthSales"`
	MonthSaleCount  int                      `json:"monthSaleCount"`
}

// GetDashboardStats composes per-collection aggregates into the dashboard
// payload. "Today" and "this month" are evaluated in the server's local
// time zone.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Customers = query.CustomerStats(customers)

	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Suppliers = query.SupplierStats(suppliers)

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.PendingQuantity = decimal.Zero
	for _, b := range bookings {
		switch b.Status {
		case enum.BookingStatusPending, enum.BookingStatusConfirmed, enum.BookingStatusPartialLoaded:
			stats.OpenBookings++
			stats.PendingQuantity = stats.PendingQuantity.Add(b.Quantity.Sub(b.QuantityLoaded))
		}
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	loadings, err := s.loadingRepo.List(ctx, &dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	stats.TodayLoadings = len(loadings)

	trucks, err := s.paddyRepo.List(ctx, &dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	stats.TodayPaddy = len(trucks)
	stats.TodayPaddyKg = decimal.Zero
	for _, t := range trucks {
		stats.TodayPaddyKg = stats.TodayPaddyKg.Add(t.NetWeight)
	}

	sales, err := s.saleRepo.List(ctx, &monthStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	stats.MonthSales = decimal.Zero
	for _, sale := range sales {
		stats.MonthSales = stats.MonthSales.Add(sale.Amount)
	}
	stats.MonthSaleCount = len(sales)

	return stats, nil
}
