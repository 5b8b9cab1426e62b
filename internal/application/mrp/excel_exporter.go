package mrp

import (
	"bytes"

	"github.com/mrp/backend/internal/domain/mrp"
	"github.com/xuri/excelize/v2"
)

// renderReportWorkbook renders a report as an .xlsx workbook with a
// summary sheet, the full report table and the supplier grouping.
func renderReportWorkbook(report *mrp.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summarySheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(summarySheet, "Summary"); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, "Summary", report); err != nil {
		return nil, err
	}
	if err := writeReportSheet(f, report); err != nil {
		return nil, err
	}
	if err := writeSupplierSheet(f, report); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet string, report *mrp.Report) error {
	rows := [][]interface{}{
		{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Total products", report.TotalProducts},
		{"Critical products", report.CriticalProducts},
		{"Suggested orders", report.SuggestedOrders},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeReportSheet(f *excelize.File, report *mrp.Report) error {
	const sheet = "Report"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{
		"product_code",
		"product_name",
		"supplier",
		"status",
		"percent_of_min",
		"available_stock",
		"incoming_stock",
		"min_stock",
		"suggested_order",
		"days_until_stockout",
		"po_placed",
		"urgency_score",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, item := range report.Items {
		days := interface{}(nil)
		if item.DaysUntilStockout != nil {
			days = *item.DaysUntilStockout
		}
		values := []interface{}{
			item.Product.Code,
			item.Product.Name,
			item.Supplier.Name,
			item.StockStatus.String(),
			item.PercentOfMin.Round(1).InexactFloat64(),
			item.CalculatedAvailableStock.InexactFloat64(),
			item.Product.IncomingStock.InexactFloat64(),
			item.Product.MinStockQuantity.InexactFloat64(),
			item.SuggestedOrderQuantity.InexactFloat64(),
			days,
			item.Product.POPlaced,
			item.UrgencyScore,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeSupplierSheet(f *excelize.File, report *mrp.Report) error {
	const sheet = "Suppliers"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{
		"supplier_code",
		"supplier_name",
		"product_code",
		"product_name",
		"quantity",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, group := range report.SupplierGroups {
		for _, item := range group.Items {
			values := []interface{}{
				group.SupplierCode,
				group.SupplierName,
				item.ProductCode,
				item.ProductName,
				item.Quantity.InexactFloat64(),
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
		totals := []interface{}{
			group.SupplierCode,
			group.SupplierName,
			"",
			"TOTAL",
			group.TotalQuantity.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
			return err
		}
		row++
	}
	return nil
}
