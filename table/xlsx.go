package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSXFile decodes a table from the first sheet of a spreadsheet. The
// first row is the header; all cell values come back as strings, empty cells
// as nil.
func ReadXLSXFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return New(), nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return New(), nil
	}

	t := New(rows[0]...)
	for _, rec := range rows[1:] {
		row := Row{}
		for i, col := range t.Columns {
			if i < len(rec) && rec[i] != "" {
				row[col] = rec[i]
			}
		}
		t.Append(row)
	}
	return t, nil
}

// WriteXLSXFile encodes a table to the first sheet of a new spreadsheet.
// Timestamps are written zone-less so spreadsheet tools treat them as plain
// date-times.
func WriteXLSXFile(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsx header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("xlsx write header: %w", err)
		}
	}
	for ri, row := range t.Rows {
		for ci, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return fmt.Errorf("xlsx cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, xlsxValue(row[col])); err != nil {
				return fmt.Errorf("xlsx write row %d: %w", ri+1, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx %s: %w", path, err)
	}
	return nil
}

func xlsxValue(v any) any {
	if ts, ok := Time(v); ok {
		// Strip the zone; keep the wall-clock instant.
		return ts.Format("2006-01-02 15:04:05.000")
	}
	if v == nil {
		return ""
	}
	return v
}
