package xlsxout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/style"
	"github.com/tsawler/gridplan/units"
)

// reopen serializes the writer's workbook and reads it back.
func reopen(t *testing.T, w *Writer) *excelize.File {
	t.Helper()
	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func authored() model.Edges {
	return model.Edges{
		Top: model.EdgeAuthored, Bottom: model.EdgeAuthored,
		Left: model.EdgeAuthored, Right: model.EdgeAuthored,
	}
}

func TestWriteSheetValuesAndMerges(t *testing.T) {
	w := NewWriter(nil)
	defer w.Close()

	err := w.WriteSheet(Sheet{
		Name: "tables",
		Placements: []model.Placement{
			{DestRow: 0, DestCol: 0, RowSpan: 1, ColSpan: 2, Text: "head", Edges: authored()},
			{DestRow: 1, DestCol: 0, RowSpan: 1, ColSpan: 1, Text: "a", Edges: authored()},
			{DestRow: 1, DestCol: 1, RowSpan: 1, ColSpan: 1, Text: "b", Edges: authored()},
		},
		ColWidths:  []units.Length{units.FromPoints(63.2), units.FromPoints(63.2)},
		RowHeights: []units.Length{units.FromPoints(20), units.FromPoints(14)},
	})
	if err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}

	f := reopen(t, w)

	if got, _ := f.GetCellValue("tables", "A1"); got != "head" {
		t.Errorf("A1 = %q, want head", got)
	}
	if got, _ := f.GetCellValue("tables", "B2"); got != "b" {
		t.Errorf("B2 = %q, want b", got)
	}

	merges, err := f.GetMergeCells("tables")
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("got %d merges, want 1", len(merges))
	}
	if merges[0].GetStartAxis() != "A1" || merges[0].GetEndAxis() != "B1" {
		t.Errorf("merge = %s:%s, want A1:B1", merges[0].GetStartAxis(), merges[0].GetEndAxis())
	}

	if h, _ := f.GetRowHeight("tables", 1); h != 20 {
		t.Errorf("row 1 height = %v, want 20", h)
	}
	if cw, _ := f.GetColWidth("tables", "A"); cw != 10 {
		t.Errorf("col A width = %v, want 10", cw)
	}
}

func TestWriteSheetMultipleSheets(t *testing.T) {
	w := NewWriter(nil)
	defer w.Close()

	for _, name := range []string{"first", "second"} {
		err := w.WriteSheet(Sheet{
			Name: name,
			Placements: []model.Placement{
				{DestRow: 0, DestCol: 0, RowSpan: 1, ColSpan: 1, Text: name, Edges: authored()},
			},
		})
		if err != nil {
			t.Fatalf("WriteSheet(%s): %v", name, err)
		}
	}

	f := reopen(t, w)
	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "first" || sheets[1] != "second" {
		t.Errorf("sheets = %v, want [first second]", sheets)
	}
	if got, _ := f.GetCellValue("second", "A1"); got != "second" {
		t.Errorf("second!A1 = %q", got)
	}
}

func TestWriteSheetStyles(t *testing.T) {
	ctx := style.NewContext(
		map[string]style.BorderFill{
			"3": {
				Sides: style.Sides{
					Left: style.BorderSolid, Right: style.BorderSolid,
					Top: style.BorderSolid, Bottom: style.BorderDash,
				},
				Background: style.ParseColor("#FFCC00"),
			},
		},
		map[string]style.Font{
			"7": {Name: "Batang", Size: 1200, Bold: true},
		},
		"3",
	)

	w := NewWriter(ctx)
	defer w.Close()

	cell := &model.Cell{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, StyleRef: "3", FontRef: "7"}
	err := w.WriteSheet(Sheet{
		Name: "styled",
		Placements: []model.Placement{
			{DestRow: 0, DestCol: 0, RowSpan: 1, ColSpan: 1, Text: "x", Cell: cell, Edges: authored()},
		},
	})
	if err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}

	f := reopen(t, w)
	styleID, err := f.GetCellStyle("styled", "A1")
	if err != nil {
		t.Fatalf("GetCellStyle: %v", err)
	}
	got, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle: %v", err)
	}

	if got.Font == nil || !got.Font.Bold {
		t.Error("expected a bold font")
	}
	if got.Font != nil && got.Font.Size != 12 {
		t.Errorf("font size = %v, want 12", got.Font.Size)
	}
	if len(got.Fill.Color) == 0 || !strings.Contains(got.Fill.Color[0], "FFCC00") {
		t.Errorf("fill = %v, want FFCC00", got.Fill.Color)
	}

	borders := map[string]int{}
	for _, b := range got.Border {
		borders[b.Type] = b.Style
	}
	if borders["left"] != 1 || borders["bottom"] != 3 {
		t.Errorf("borders = %v, want left thin and bottom dashed", borders)
	}
}

func TestWriteSheetNestedEdges(t *testing.T) {
	ctx := style.NewContext(map[string]style.BorderFill{
		"p": {Sides: style.Sides{
			Left: style.BorderThick, Right: style.BorderThick,
			Top: style.BorderThick, Bottom: style.BorderThick,
		}},
	}, nil, "")

	w := NewWriter(ctx)
	defer w.Close()

	cell := &model.Cell{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}
	err := w.WriteSheet(Sheet{
		Name: "nested",
		Placements: []model.Placement{
			{
				DestRow: 0, DestCol: 0, RowSpan: 1, ColSpan: 1,
				Text: "n", Cell: cell, Nested: true, InheritRef: "p",
				Edges: model.Edges{
					Top: model.EdgeInherited, Left: model.EdgeInherited,
					Bottom: model.EdgeNested, Right: model.EdgeNested,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}

	f := reopen(t, w)
	styleID, _ := f.GetCellStyle("nested", "A1")
	got, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle: %v", err)
	}

	for _, b := range got.Border {
		switch b.Type {
		case "top", "left":
			if b.Style != 2 {
				t.Errorf("%s border = %d, want inherited medium", b.Type, b.Style)
			}
		case "bottom", "right":
			if b.Style != 3 {
				t.Errorf("%s border = %d, want nested dash", b.Type, b.Style)
			}
		}
	}
}

func TestWriteSheetPageSetup(t *testing.T) {
	w := NewWriter(nil)
	defer w.Close()

	page := &model.PageSetup{
		Width:  units.FromMillimeters(210),
		Height: units.FromMillimeters(297),
		Margin: model.PageMargin{
			Left:  units.FromInches(1),
			Right: units.FromInches(1),
		},
	}
	err := w.WriteSheet(Sheet{
		Name: "paged",
		Placements: []model.Placement{
			{DestRow: 0, DestCol: 0, RowSpan: 1, ColSpan: 1, Text: "x", Edges: authored()},
		},
		Page: page,
	})
	if err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}

	f := reopen(t, w)
	layout, err := f.GetPageLayout("paged")
	if err != nil {
		t.Fatalf("GetPageLayout: %v", err)
	}
	if layout.Size == nil || *layout.Size != 9 {
		t.Errorf("paper size = %v, want A4 (9)", layout.Size)
	}
	if layout.Orientation == nil || *layout.Orientation != "portrait" {
		t.Errorf("orientation = %v, want portrait", layout.Orientation)
	}

	margins, err := f.GetPageMargins("paged")
	if err != nil {
		t.Fatalf("GetPageMargins: %v", err)
	}
	if margins.Left == nil || *margins.Left != 1 {
		t.Errorf("left margin = %v, want 1in", margins.Left)
	}
}

func TestMatchPaperSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want int
	}{
		{"a4", 210, 297, 9},
		{"a4 landscape", 297, 210, 9},
		{"a4 rounded", 208, 295, 9},
		{"a3", 297, 420, 8},
		{"b5", 182, 257, 13},
		{"letter", 216, 279, 1},
		{"custom", 300, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPaperSize(tt.w, tt.h); got != tt.want {
				t.Errorf("matchPaperSize(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
			}
		})
	}
}
