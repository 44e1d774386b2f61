package gridplan

import (
	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/placer"
	"github.com/tsawler/gridplan/style"
	"github.com/tsawler/gridplan/units"
	"github.com/tsawler/gridplan/xlsxout"
)

// PlacementMode identifies how a table was placed.
type PlacementMode int

const (
	// ModeBase passes rows through unchanged.
	ModeBase PlacementMode = iota
	// ModeSplit gives every paragraph its own destination row.
	ModeSplit
	// ModeNested expands the grid locally around inlined nested tables.
	ModeNested
)

// String returns the mode name.
func (m PlacementMode) String() string {
	switch m {
	case ModeSplit:
		return "split"
	case ModeNested:
		return "nested"
	default:
		return "base"
	}
}

// TablePlan is the placement outcome for one source table.
type TablePlan struct {
	// Table indexes the source document's table slice.
	Table int
	Mode  PlacementMode

	// StartRow is the table's first destination row on its sheet.
	StartRow int

	Result placer.Result
}

// SheetPlan is one worksheet's worth of planned content.
type SheetPlan struct {
	Name string

	// Unified holds the sheet's reconciled column boundaries.
	Unified units.BoundaryList

	ColWidths  []units.Length
	RowHeights []units.Length

	Placements []model.Placement
	Tables     []TablePlan

	Page *model.PageSetup
}

// Plan is a fully resolved conversion: ready to write, and inspectable
// before writing.
type Plan struct {
	Sheets []SheetPlan

	styles *style.Context
}

// Secondary returns every nested link that could not be placed inline
// (several children sharing one parent cell), across all sheets.
func (p *Plan) Secondary() []model.NestedLink {
	var out []model.NestedLink
	for _, s := range p.Sheets {
		for _, tp := range s.Tables {
			out = append(out, tp.Result.Secondary...)
		}
	}
	return out
}

// Report flattens the plan into per-placement audit records.
func (p *Plan) Report() []xlsxout.ReportEntry {
	var out []xlsxout.ReportEntry
	for _, s := range p.Sheets {
		for _, pl := range s.Placements {
			e := xlsxout.ReportEntry{
				Sheet:   s.Name,
				Table:   pl.Table,
				Para:    pl.Para,
				DestRow: pl.DestRow,
				DestCol: pl.DestCol,
				RowSpan: pl.RowSpan,
				ColSpan: pl.ColSpan,
				Nested:  pl.Nested,
				Text:    pl.Text,
			}
			if pl.Cell != nil {
				e.SourceRow = pl.Cell.Row
				e.SourceCol = pl.Cell.Col
			} else {
				e.SourceRow = -1
				e.SourceCol = -1
			}
			out = append(out, e)
		}
	}
	return out
}

// write renders the plan into a workbook.
func (p *Plan) write(reportSheet bool) (*xlsxout.Writer, error) {
	w := xlsxout.NewWriter(p.styles)
	for _, s := range p.Sheets {
		err := w.WriteSheet(xlsxout.Sheet{
			Name:       s.Name,
			Placements: s.Placements,
			ColWidths:  s.ColWidths,
			RowHeights: s.RowHeights,
			Page:       s.Page,
		})
		if err != nil {
			w.Close()
			return nil, err
		}
	}
	if reportSheet {
		if err := w.WriteReport("placements", p.Report()); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}
