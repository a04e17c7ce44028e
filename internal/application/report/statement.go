// Package report renders printable documents for the console: the customer
// account statement as PDF.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/ledger"
	"github.com/milldesk/milldesk-api/pkg/phone"
)

// StatementData holds everything the statement needs: the customer and
// their ledger entries. Entries are re-sorted chronologically before
// rendering, so callers can pass them in any order.
type StatementData struct {
	Customer *entity.Customer
	Entries  []entity.LedgerEntry
}

// GenerateCustomerStatement renders a customer's account statement: header,
// contact block, the full ledger table and the closing balance.
func GenerateCustomerStatement(data *StatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Customer Account Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer Information", "1", 1, "L", true, 0, "")

	phoneDisplay := "-"
	if data.Customer.Phone != nil && *data.Customer.Phone != "" {
		phoneDisplay = phone.Format(*data.Customer.Phone)
	}
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", data.Customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", phoneDisplay), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("State: %s", data.Customer.State), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "", "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Ledger table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Account Ledger", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(28, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(72, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Debit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Credit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	entries := ledger.Chronological(data.Entries)
	for _, e := range entries {
		description := truncateDescription(e.Description, 40)
		pdf.CellFormat(28, 6, e.Date.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(72, 6, description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, money(e.Debit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(e.Credit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, e.RunningBalance.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	if len(entries) == 0 {
		pdf.CellFormat(190, 6, "No transactions recorded", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Closing balance - red for receivable, green otherwise
	balance := data.Customer.Balance
	if balance.IsNegative() {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	balanceText := fmt.Sprintf("Amount Owed: NGN %s", balance.Neg().StringFixed(2))
	if balance.IsZero() {
		balanceText = "ACCOUNT SETTLED"
	} else if balance.IsPositive() {
		balanceText = fmt.Sprintf("Credit Balance: NGN %s", balance.StringFixed(2))
	}
	pdf.CellFormat(190, 10, balanceText, "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncateDescription shortens a description to max characters, counting
// runes so a multi-byte character is never cut mid-sequence.
func truncateDescription(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func money(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return d.StringFixed(2)
}
