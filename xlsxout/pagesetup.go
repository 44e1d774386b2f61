package xlsxout

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/gridplan/model"
)

// paperSize is one standard paper size in millimeters with its OOXML code.
type paperSize struct {
	w, h int
	code int
}

// Codes follow the SpreadsheetML paperSize enumeration.
var paperSizes = []paperSize{
	{210, 297, 9},  // A4
	{297, 420, 8},  // A3
	{148, 210, 11}, // A5
	{182, 257, 13}, // B5
	{250, 354, 12}, // B4
	{216, 279, 1},  // Letter
	{216, 356, 5},  // Legal
}

// paperSizeTolerance allows for rounding in authored page dimensions.
const paperSizeTolerance = 5 // mm

// matchPaperSize maps a page extent to a standard paper code, checking
// both orientations. Returns 0 when nothing matches.
func matchPaperSize(widthMM, heightMM int) int {
	near := func(a, b int) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d < paperSizeTolerance
	}
	for _, p := range paperSizes {
		if (near(widthMM, p.w) && near(heightMM, p.h)) ||
			(near(widthMM, p.h) && near(heightMM, p.w)) {
			return p.code
		}
	}
	return 0
}

// applyPageSetup carries the source page geometry onto a sheet: paper
// size, orientation, margins, and fit-to-width so wide tables print on
// one page across.
func (w *Writer) applyPageSetup(sheet string, page *model.PageSetup) error {
	orientation := "portrait"
	if page.Landscape {
		orientation = "landscape"
	}

	layout := &excelize.PageLayoutOptions{
		Orientation: &orientation,
	}
	widthMM := int(math.Round(page.Width.Millimeters()))
	heightMM := int(math.Round(page.Height.Millimeters()))
	if code := matchPaperSize(widthMM, heightMM); code != 0 {
		layout.Size = &code
	}
	fitWidth := 1
	layout.FitToWidth = &fitWidth

	if err := w.file.SetPageLayout(sheet, layout); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	m := page.Margin
	left := m.Left.Inches() + m.Gutter.Inches()
	right := m.Right.Inches()
	top := m.Top.Inches()
	bottom := m.Bottom.Inches()
	header := m.Header.Inches()
	footer := m.Footer.Inches()
	if err := w.file.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Left:   &left,
		Right:  &right,
		Top:    &top,
		Bottom: &bottom,
		Header: &header,
		Footer: &footer,
	}); err != nil {
		return fmt.Errorf("page margins: %w", err)
	}
	return nil
}
