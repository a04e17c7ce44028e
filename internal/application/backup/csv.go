package backup

import (
	"bytes"
	"strings"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/pkg/phone"
)

// csvDateLayout is the human-facing date format used in spreadsheet exports.
const csvDateLayout = "02/01/2006 15:04"

var customerCSVHeader = []string{"ID", "Name", "Phone", "State", "Balance", "Created At", "Updated At"}

var supplierCSVHeader = []string{"ID", "Name", "Phone", "Agent", "Notes", "Created At", "Updated At"}

// writeCSVRow writes one record with every field quoted, embedded quotes
// doubled per RFC 4180. encoding/csv only quotes when it has to, and the
// wire contract quotes every value, so the row is rendered by hand.
func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// ExportCustomersCSV renders customers as a spreadsheet-friendly CSV with a
// fixed header row and every value quoted. Phones are display-formatted,
// balances rendered with two decimal places.
func ExportCustomersCSV(customers []entity.Customer) ([]byte, error) {
	var buf bytes.Buffer
	writeCSVRow(&buf, customerCSVHeader)
	for _, c := range customers {
		phoneCol := ""
		if c.Phone != nil {
			phoneCol = phone.Format(*c.Phone)
		}
		writeCSVRow(&buf, []string{
			c.ID.String(),
			c.Name,
			phoneCol,
			string(c.State),
			c.Balance.StringFixed(2),
			c.CreatedAt.Format(csvDateLayout),
			c.UpdatedAt.Format(csvDateLayout),
		})
	}
	return buf.Bytes(), nil
}

// ExportSuppliersCSV renders suppliers with the same conventions.
func ExportSuppliersCSV(suppliers []entity.Supplier) ([]byte, error) {
	var buf bytes.Buffer
	writeCSVRow(&buf, supplierCSVHeader)
	for _, s := range suppliers {
		phoneCol := ""
		if s.Phone != nil {
			phoneCol = phone.Format(*s.Phone)
		}
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}
		writeCSVRow(&buf, []string{
			s.ID.String(),
			s.Name,
			phoneCol,
			s.Agent,
			notes,
			s.CreatedAt.Format(csvDateLayout),
			s.UpdatedAt.Format(csvDateLayout),
		})
	}
	return buf.Bytes(), nil
}
