package model

import (
	"strings"
	"testing"

	"github.com/tsawler/gridplan/units"
)

// buildTable constructs a simple rows×cols table of unit cells.
func buildTable(rows, cols int, cellWidth, cellHeight units.Length) *Table {
	t := &Table{RowCount: rows, ColCount: cols}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t.Cells = append(t.Cells, Cell{
				Row: r, Col: c, RowSpan: 1, ColSpan: 1,
				Width: cellWidth, Height: cellHeight,
			})
		}
	}
	return t
}

func TestCellText(t *testing.T) {
	c := Cell{Paragraphs: []Paragraph{{Text: "first"}, {Text: "second"}}}
	if got := c.Text(); got != "first\nsecond" {
		t.Errorf("Text() = %q", got)
	}

	empty := Cell{}
	if got := empty.Text(); got != "" {
		t.Errorf("empty cell Text() = %q", got)
	}
}

func TestCellParagraphCount(t *testing.T) {
	if got := (&Cell{}).ParagraphCount(); got != 1 {
		t.Errorf("empty cell ParagraphCount() = %d, want 1", got)
	}
	c := Cell{Paragraphs: []Paragraph{{}, {}, {}}}
	if got := c.ParagraphCount(); got != 3 {
		t.Errorf("ParagraphCount() = %d, want 3", got)
	}
}

func TestCellAt(t *testing.T) {
	tbl := buildTable(2, 2, 1000, 500)
	if c := tbl.CellAt(1, 1); c == nil || c.Row != 1 || c.Col != 1 {
		t.Fatalf("CellAt(1,1) = %+v", c)
	}
	if c := tbl.CellAt(5, 0); c != nil {
		t.Errorf("out-of-range CellAt should be nil, got %+v", c)
	}
}

func TestCellAtCoveredPosition(t *testing.T) {
	tbl := &Table{
		RowCount: 2,
		ColCount: 2,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
		},
	}

	// A position under a merge resolves to the spanning cell's anchor.
	c := tbl.CellAt(1, 0)
	if c == nil || c.Row != 0 || c.Col != 0 {
		t.Fatalf("CellAt(1,0) = %+v, want the cell anchored at (0,0)", c)
	}

	gappy := &Table{
		RowCount: 1,
		ColCount: 2,
		Cells:    []Cell{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}},
	}
	if c := gappy.CellAt(0, 1); c != nil {
		t.Errorf("gap position should be nil, got %+v", c)
	}
}

func TestValidateWellFormed(t *testing.T) {
	tbl := buildTable(3, 3, 1000, 500)
	if err := tbl.Validate(); err != nil {
		t.Errorf("well-formed table reported invalid: %v", err)
	}
}

func TestValidateSpannedTable(t *testing.T) {
	// 2x2 grid: one 2x1 cell on the left, two unit cells on the right.
	tbl := &Table{
		RowCount: 2, ColCount: 2,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
		},
	}
	if err := tbl.Validate(); err != nil {
		t.Errorf("spanned table reported invalid: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		table   *Table
		wantSub string
	}{
		{
			"overlap",
			&Table{RowCount: 1, ColCount: 2, Cells: []Cell{
				{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2},
				{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			}},
			"overlap",
		},
		{
			"gap",
			&Table{RowCount: 1, ColCount: 2, Cells: []Cell{
				{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
			}},
			"gap",
		},
		{
			"out of range",
			&Table{RowCount: 1, ColCount: 1, Cells: []Cell{
				{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2},
			}},
			"exceeds",
		},
		{
			"zero span",
			&Table{RowCount: 1, ColCount: 1, Cells: []Cell{
				{Row: 0, Col: 0, RowSpan: 0, ColSpan: 1},
			}},
			"span",
		},
		{
			"empty grid",
			&Table{RowCount: 0, ColCount: 3},
			"empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestColumnWidthsSpanDistribution(t *testing.T) {
	// One 1x2 cell of width 4000 over two columns, then a sized unit row.
	tbl := &Table{
		RowCount: 2, ColCount: 2, Width: 4000,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2, Width: 4000},
			{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Width: 2500},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Width: 1500},
		},
	}
	widths := tbl.ColumnWidths()
	// The spanned cell is first, so both columns get 2000 before the
	// precisely sized row-1 cells are seen.
	if widths[0] != 2000 || widths[1] != 2000 {
		t.Errorf("ColumnWidths() = %v, want [2000 2000]", widths)
	}
}

func TestColumnWidthsFallback(t *testing.T) {
	tbl := &Table{
		RowCount: 1, ColCount: 4, Width: 8000,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 2, RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 3, RowSpan: 1, ColSpan: 1},
		},
	}
	for i, w := range tbl.ColumnWidths() {
		if w != 2000 {
			t.Errorf("column %d width = %d, want even 2000", i, w)
		}
	}
}

func TestRowHeightsSpanDistribution(t *testing.T) {
	tbl := &Table{
		RowCount: 2, ColCount: 1, Height: 3000,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1, Height: 3000},
		},
	}
	heights := tbl.RowHeights()
	if heights[0] != 1500 || heights[1] != 1500 {
		t.Errorf("RowHeights() = %v, want [1500 1500]", heights)
	}
}

func TestColumnBoundaries(t *testing.T) {
	tbl := &Table{
		RowCount: 1, ColCount: 2,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Width: 1000},
			{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Width: 2000},
		},
	}
	b := tbl.ColumnBoundaries()
	want := units.BoundaryList{0, 1000, 3000}
	if len(b) != len(want) {
		t.Fatalf("ColumnBoundaries() = %v, want %v", b, want)
	}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("ColumnBoundaries() = %v, want %v", b, want)
		}
	}
	if !b.Valid() {
		t.Error("boundaries should be valid")
	}
}

func TestPlacementMerged(t *testing.T) {
	if (&Placement{RowSpan: 1, ColSpan: 1}).Merged() {
		t.Error("1x1 placement should not be merged")
	}
	if !(&Placement{RowSpan: 1, ColSpan: 2}).Merged() {
		t.Error("1x2 placement should be merged")
	}
}

func TestWarningf(t *testing.T) {
	w := Warningf(WarnMappingGap, 3, 1, 2, "column %d unmapped", 2)
	if w.Code != WarnMappingGap || w.Table != 3 || w.Row != 1 || w.Col != 2 {
		t.Errorf("unexpected warning: %+v", w)
	}
	if w.Message != "column 2 unmapped" {
		t.Errorf("Message = %q", w.Message)
	}
	if w.Code.String() != "mapping-gap" {
		t.Errorf("code string = %q", w.Code.String())
	}
}
