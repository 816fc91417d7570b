// Package xlsx renders tabular reports as single-sheet workbooks.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column is one header cell and its display width.
type Column struct {
	Title string
	Width float64
}

// Render writes columns as a styled header row followed by rows.
func Render(sheetName string, columns []Column, rows [][]any) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		name := colName(i)
		if col.Width > 0 {
			if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
				return nil, fmt.Errorf("failed to set column width: %w", err)
			}
		}
		if err := f.SetCellValue(sheetName, cell(name, 1), col.Title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if len(columns) > 0 {
		if err := f.SetCellStyle(sheetName, "A1", cell(colName(len(columns)-1), 1), headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
		if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
			return nil, fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	for r, values := range rows {
		start := cell("A", r+2)
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
