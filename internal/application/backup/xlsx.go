package backup

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/pkg/phone"
)

// ExportCustomersXLSX renders customers as a single-sheet workbook with the
// same columns as the CSV export. Balances are written as numbers so the
// sheet stays sortable in a spreadsheet application.
func ExportCustomersXLSX(customers []entity.Customer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Customers"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(customerCSVHeader))
	for i, h := range customerCSVHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, c := range customers {
		phoneCol := ""
		if c.Phone != nil {
			phoneCol = phone.Format(*c.Phone)
		}
		balance, _ := c.Balance.Float64()
		row := []interface{}{
			c.ID.String(),
			c.Name,
			phoneCol,
			string(c.State),
			balance,
			c.CreatedAt.Format(csvDateLayout),
			c.UpdatedAt.Format(csvDateLayout),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
