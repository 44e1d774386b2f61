// Package xlsxout renders placements into an Excel workbook.
//
// The writer consumes the placer's output: placements carry their own
// destination coordinates and border roles, so writing is a straight
// transcription plus style resolution through the document's style
// context. One Sheet per source document section or table group.
package xlsxout

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/style"
	"github.com/tsawler/gridplan/units"
)

// nested tables are outlined in gray dashes so they read as embedded
const nestedBorderStyle = 3
const nestedBorderColor = "808080"

// Sheet is one worksheet's worth of placements with its grid geometry.
type Sheet struct {
	Name       string
	Placements []model.Placement
	ColWidths  []units.Length
	RowHeights []units.Length
	Page       *model.PageSetup
}

// Writer accumulates sheets into an xlsx workbook.
type Writer struct {
	file   *excelize.File
	styles *style.Context
	cache  map[string]int
	sheets int
}

// NewWriter creates an empty workbook. styles may be nil for unstyled
// sources; authored borders then resolve to no line.
func NewWriter(styles *style.Context) *Writer {
	return &Writer{
		file:   excelize.NewFile(),
		styles: styles,
		cache:  make(map[string]int),
	}
}

// File exposes the underlying workbook for callers that need excelize
// directly (extra sheets, custom properties).
func (w *Writer) File() *excelize.File {
	return w.file
}

// WriteSheet renders one sheet. The first sheet replaces the workbook's
// default sheet; later ones are appended.
func (w *Writer) WriteSheet(s Sheet) error {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("Sheet%d", w.sheets+1)
	}

	if w.sheets == 0 {
		if name != "Sheet1" {
			if err := w.file.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("naming sheet: %w", err)
			}
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("adding sheet: %w", err)
		}
	}
	w.sheets++

	for c, width := range s.ColWidths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := w.file.SetColWidth(name, col, col, width.ColumnWidth()); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}
	for r, height := range s.RowHeights {
		if height <= 0 {
			// Spacer and body rows keep the sheet default.
			continue
		}
		if err := w.file.SetRowHeight(name, r+1, height.RowHeight()); err != nil {
			return fmt.Errorf("row height: %w", err)
		}
	}

	for i := range s.Placements {
		if err := w.writePlacement(name, &s.Placements[i]); err != nil {
			return err
		}
	}

	if s.Page != nil {
		if err := w.applyPageSetup(name, s.Page); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writePlacement(sheet string, p *model.Placement) error {
	topLeft, err := excelize.CoordinatesToCellName(p.DestCol+1, p.DestRow+1)
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(p.DestCol+p.ColSpan, p.DestRow+p.RowSpan)
	if err != nil {
		return err
	}

	if p.Merged() {
		if err := w.file.MergeCell(sheet, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merging %s:%s: %w", topLeft, bottomRight, err)
		}
	}
	if p.Text != "" {
		if err := w.file.SetCellValue(sheet, topLeft, p.Text); err != nil {
			return fmt.Errorf("writing %s: %w", topLeft, err)
		}
	}

	styleID, err := w.placementStyle(p)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, topLeft, bottomRight, styleID); err != nil {
		return fmt.Errorf("styling %s:%s: %w", topLeft, bottomRight, err)
	}
	return nil
}

// placementStyle resolves a placement's edge roles, fill, and font into an
// excelize style id, deduplicated across the workbook.
func (w *Writer) placementStyle(p *model.Placement) (int, error) {
	var styleRef, fontRef string
	if p.Cell != nil {
		styleRef = p.Cell.StyleRef
		fontRef = p.Cell.FontRef
	}
	own := w.styles.BorderFill(styleRef)
	inherited := w.styles.BorderFill(p.InheritRef)

	def := &excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: "center",
			WrapText: true,
		},
	}
	def.Border = append(def.Border,
		borderFor("left", p.Edges.Left, own.Sides.Left, inherited.Sides.Left),
		borderFor("right", p.Edges.Right, own.Sides.Right, inherited.Sides.Right),
		borderFor("top", p.Edges.Top, own.Sides.Top, inherited.Sides.Top),
		borderFor("bottom", p.Edges.Bottom, own.Sides.Bottom, inherited.Sides.Bottom),
	)

	bg := own.Background
	if !bg.Set && p.Nested {
		bg = inherited.Background
	}
	if bg.Set {
		def.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{bg.Hex()},
		}
	}

	if font := w.styles.Font(fontRef); fontRef != "" {
		f := &excelize.Font{
			Bold:      font.Bold,
			Italic:    font.Italic,
			Underline: "",
			Strike:    font.Strike,
		}
		if font.Name != "" {
			f.Family = font.Name
		}
		if font.Underline {
			f.Underline = "single"
		}
		if size := font.SizePoints(); size > 0 {
			f.Size = size
		}
		if font.Color.Set {
			f.Color = font.Color.Hex()
		}
		def.Font = f
	}

	key := styleKey(def)
	if id, ok := w.cache[key]; ok {
		return id, nil
	}
	id, err := w.file.NewStyle(def)
	if err != nil {
		return 0, fmt.Errorf("building style: %w", err)
	}
	w.cache[key] = id
	return id, nil
}

// borderFor maps one edge's role onto an excelize border entry. A style of
// 0 means no line.
func borderFor(side string, role model.EdgeRole, own, inherited style.BorderKind) excelize.Border {
	b := excelize.Border{Type: side, Color: "000000"}
	switch role {
	case model.EdgeSuppressed:
		b.Style = 0
	case model.EdgeNested:
		b.Style = nestedBorderStyle
		b.Color = nestedBorderColor
	case model.EdgeInherited:
		b.Style = inherited.SpreadsheetStyle()
		if b.Style == 0 {
			// Parent had no border there; keep the embedded look.
			b.Style = nestedBorderStyle
			b.Color = nestedBorderColor
		}
	default:
		b.Style = own.SpreadsheetStyle()
	}
	return b
}

// styleKey builds a cache key for a resolved style definition.
func styleKey(def *excelize.Style) string {
	var buf bytes.Buffer
	for _, b := range def.Border {
		fmt.Fprintf(&buf, "%s:%d:%s;", b.Type, b.Style, b.Color)
	}
	if len(def.Fill.Color) > 0 {
		fmt.Fprintf(&buf, "bg:%s;", def.Fill.Color[0])
	}
	if def.Font != nil {
		fmt.Fprintf(&buf, "f:%s:%v:%v:%v:%s:%s:%.1f;",
			def.Font.Family, def.Font.Bold, def.Font.Italic, def.Font.Strike,
			def.Font.Underline, def.Font.Color, def.Font.Size)
	}
	return buf.String()
}

// SaveAs writes the workbook to a file.
func (w *Writer) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// Bytes serializes the workbook.
func (w *Writer) Bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases the workbook's temporary resources.
func (w *Writer) Close() error {
	return w.file.Close()
}
