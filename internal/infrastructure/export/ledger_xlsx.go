// Package export renders ledger data as spreadsheets.
package export

import (
	"io"
	"time"

	"reforma_xpto/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	LedgerSheet      = "Lancamentos"
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ledgerDateLayout = "2006-01-02"
	defaultSheetName = "Sheet1"
)

var ledgerHeadings = []string{
	"ID", "Descricao", "Tipo", "Status", "Valor", "Vencimento", "Documento", "Categoria", "Pago em", "Referencia",
}

// WriteLedger writes one row per entry, in the given order, after a header row.
func WriteLedger(w io.Writer, entries []entities.FinancialEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheetName, LedgerSheet); err != nil {
		return err
	}

	for i, h := range ledgerHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(LedgerSheet, cell, h); err != nil {
			return err
		}
	}

	for r, e := range entries {
		if err := f.SetSheetRow(LedgerSheet, rowStart(r+2), ledgerRow(e)); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func rowStart(row int) string {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return cell
}

func ledgerRow(e entities.FinancialEntry) *[]interface{} {
	row := []interface{}{
		e.ID,
		e.Description,
		string(e.Type),
		string(e.Status),
		e.Value.InexactFloat64(),
		formatDate(e.DueDate),
		e.RelatedNumber,
		e.CategoryID,
		"",
		e.PaymentReference,
	}
	if e.PaidAt != nil {
		row[8] = formatDate(*e.PaidAt)
	}
	return &row
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(ledgerDateLayout)
}
