package xlsxout

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReportEntry is one audit record: where a piece of content came from and
// where it landed. Source coordinates are -1 for content with no source
// cell (body text).
type ReportEntry struct {
	Sheet                string
	Table                int
	SourceRow, SourceCol int
	Para                 int
	DestRow, DestCol     int
	RowSpan, ColSpan     int
	Nested               bool
	Text                 string
}

var reportHeader = []string{
	"sheet", "table", "src row", "src col", "para",
	"dest row", "dest col", "row span", "col span", "nested", "text",
}

// WriteReport appends a worksheet listing every placement, one row per
// entry, for auditing a conversion without opening the source.
func (w *Writer) WriteReport(name string, entries []ReportEntry) error {
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("adding report sheet: %w", err)
	}
	w.sheets++

	for c, h := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}

	for i, e := range entries {
		row := i + 2
		values := []interface{}{
			e.Sheet, e.Table, e.SourceRow, e.SourceCol, e.Para,
			e.DestRow, e.DestCol, e.RowSpan, e.ColSpan, e.Nested, e.Text,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := w.file.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("report row %d: %w", row, err)
			}
		}
	}
	return nil
}
