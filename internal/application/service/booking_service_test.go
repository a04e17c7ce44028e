package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/enum"
)

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStatusForLoaded(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		loaded   string
		want     enum.BookingStatus
	}{
		{"nothing loaded", "100", "0", enum.BookingStatusConfirmed},
		{"partially loaded", "100", "40", enum.BookingStatusPartialLoaded},
		{"fully loaded", "100", "100", enum.BookingStatusFullyLoaded},
		{"fractional remainder", "100", "99.5", enum.BookingStatusPartialLoaded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusForLoaded(qty(tt.quantity), qty(tt.loaded))
			if got != tt.want {
				t.Errorf("statusForLoaded(%s, %s) = %s, want %s", tt.quantity, tt.loaded, got, tt.want)
			}
		})
	}
}

func TestValidateStatusConsistency(t *testing.T) {
	tests := []struct {
		name     string
		status   enum.BookingStatus
		quantity string
		loaded   string
		wantErr  bool
	}{
		{"pending with no loadings", enum.BookingStatusPending, "100", "0", false},
		{"confirmed with no loadings", enum.BookingStatusConfirmed, "100", "0", false},
		{"pending after loadings", enum.BookingStatusPending, "100", "40", true},
		{"partial with loadings", enum.BookingStatusPartialLoaded, "100", "40", false},
		{"partial with no loadings", enum.BookingStatusPartialLoaded, "100", "0", true},
		{"fully loaded downgrade", enum.BookingStatusConfirmed, "100", "100", true},
		{"cancel untouched booking", enum.BookingStatusCancelled, "100", "0", false},
		{"cancel loaded booking", enum.BookingStatusCancelled, "100", "40", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStatusConsistency(tt.status, qty(tt.quantity), qty(tt.loaded))
			if (err != nil) != tt.wantErr {
				t.Errorf("validateStatusConsistency(%s, %s, %s) error = %v, wantErr %v",
					tt.status, tt.quantity, tt.loaded, err, tt.wantErr)
			}
		})
	}
}
