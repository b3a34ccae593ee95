// Package xlsx adapts excelize worksheets into compression grids.
package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// builtinFormats maps common built-in number format IDs to format strings.
// It covers the date, time, percentage, currency and scientific formats the
// classifier inspects; uncovered IDs fall back to no format.
var builtinFormats = map[int]string{
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	14: "m/d/yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	44: `_("$"* #,##0.00_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
}

// SheetGrid reads one worksheet into a Grid of raw values and number format
// strings. Values come back formatted the way the sheet displays them, which
// is what the classifier expects.
func SheetGrid(f *excelize.File, sheet string) (*models.Grid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	g := models.NewGrid(height, width)
	for ri, row := range rows {
		for ci, v := range row {
			if v == "" {
				continue
			}
			cell := models.Cell{Value: v, Format: cellFormat(f, sheet, ri, ci)}
			if err := g.Set(ri, ci, cell); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// cellFormat resolves the number format string for a cell, "" when none.
func cellFormat(f *excelize.File, sheet string, row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	styleID, err := f.GetCellStyle(sheet, name)
	if err != nil {
		return ""
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return ""
	}
	if style.CustomNumFmt != nil {
		return *style.CustomNumFmt
	}
	if s, ok := builtinFormats[style.NumFmt]; ok {
		return s
	}
	return ""
}
