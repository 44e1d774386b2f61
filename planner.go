package gridplan

import (
	"fmt"
	"os"

	"github.com/tsawler/gridplan/format"
	"github.com/tsawler/gridplan/grid"
	"github.com/tsawler/gridplan/htmltab"
	"github.com/tsawler/gridplan/hwpx"
	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/placer"
	"github.com/tsawler/gridplan/units"
)

// Planner provides a fluent interface for planning table placement. Each
// configuration method returns a new Planner instance, making chains safe
// to fork and reuse.
type Planner struct {
	// Source
	filename string

	// Extracted document
	doc       *model.Document
	docLoaded bool

	// Warnings from reading the source
	loadWarnings []Warning

	// Configuration
	options PlanOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Planner with copied options.
func (p *Planner) clone() *Planner {
	return &Planner{
		filename:     p.filename,
		doc:          p.doc,
		docLoaded:    p.docLoaded,
		loadWarnings: append([]Warning(nil), p.loadWarnings...),
		options:      p.options.clone(),
		err:          p.err,
	}
}

// ensureDocument reads the source if not already extracted.
func (p *Planner) ensureDocument() error {
	if p.err != nil {
		return p.err
	}
	if p.docLoaded {
		return nil
	}
	if p.filename == "" {
		return fmt.Errorf("no source specified")
	}

	f, err := os.Open(p.filename)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	detected, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("detecting format: %w", err)
	}
	if detected == format.Unknown {
		// Content was inconclusive; trust the extension.
		detected = format.Detect(p.filename)
	}

	switch detected {
	case format.HWPX:
		r, err := hwpx.Open(p.filename)
		if err != nil {
			return fmt.Errorf("failed to open HWPX: %w", err)
		}
		defer r.Close()
		doc, warnings, err := r.Document()
		if err != nil {
			return fmt.Errorf("reading HWPX: %w", err)
		}
		p.doc = doc
		p.loadWarnings = warnings

	case format.HTML:
		r, err := htmltab.Open(p.filename)
		if err != nil {
			return fmt.Errorf("failed to open HTML: %w", err)
		}
		defer r.Close()
		doc, warnings, err := r.Document()
		if err != nil {
			return fmt.Errorf("reading HTML: %w", err)
		}
		p.doc = doc
		p.loadWarnings = warnings

	default:
		return fmt.Errorf("unsupported file format: %s", detected)
	}

	p.docLoaded = true
	return nil
}

// Document extracts and returns the source document.
func (p *Planner) Document() (*model.Document, []Warning, error) {
	if err := p.ensureDocument(); err != nil {
		return nil, nil, err
	}
	return p.doc, p.loadWarnings, nil
}

// builder returns the boundary builder with any tolerance overrides.
func (p *Planner) builder() *grid.Builder {
	b := grid.NewBuilder()
	if p.options.mergeThreshold > 0 {
		b.MergeThreshold = p.options.mergeThreshold
	}
	return b
}

func (p *Planner) mapper() *grid.Mapper {
	m := grid.NewMapper()
	if p.options.matchTolerance > 0 {
		m.MatchTolerance = p.options.matchTolerance
	}
	return m
}

// placeable returns the table indices the plan will place, and a warning
// per table skipped as malformed. With inline nesting active, nested
// tables place inside their parents rather than on their own.
func (p *Planner) placeable() ([]int, []Warning) {
	var indices []int
	if p.options.inlineNested {
		indices = p.doc.TopLevelTables()
	} else {
		indices = make([]int, len(p.doc.Tables))
		for i := range p.doc.Tables {
			indices[i] = i
		}
	}

	var kept []int
	var warnings []Warning
	for _, i := range indices {
		if err := p.doc.Tables[i].Validate(); err != nil {
			warnings = append(warnings, model.Warningf(
				model.WarnMalformedTable, i, -1, -1,
				"skipping table %d: %v", i, err))
			continue
		}
		kept = append(kept, i)
	}
	return kept, warnings
}

// UnifiedColumns reconciles the column boundaries of every placeable
// table into one shared boundary list.
func (p *Planner) UnifiedColumns() (units.BoundaryList, []Warning, error) {
	if err := p.ensureDocument(); err != nil {
		return nil, nil, err
	}
	warnings := append([]Warning(nil), p.loadWarnings...)

	indices, ws := p.placeable()
	warnings = append(warnings, ws...)

	tables := make([]*model.Table, len(indices))
	for n, i := range indices {
		tables[n] = p.doc.Tables[i]
	}
	return p.builder().BuildUnified(tables), warnings, nil
}

// Plan resolves the whole conversion: unified columns, per-table
// placement, row geometry, and page setup, without writing anything.
func (p *Planner) Plan() (*Plan, []Warning, error) {
	if err := p.ensureDocument(); err != nil {
		return nil, nil, err
	}
	warnings := append([]Warning(nil), p.loadWarnings...)

	indices, ws := p.placeable()
	warnings = append(warnings, ws...)

	plan := &Plan{styles: p.doc.Styles}
	if p.options.sheetPerTable {
		ws = p.planPerTable(plan, indices)
	} else {
		ws = p.planStacked(plan, indices)
	}
	warnings = append(warnings, ws...)

	return plan, warnings, nil
}

// planStacked lays every table onto one sheet, stacked vertically with a
// blank spacer row between tables, all sharing the unified column grid.
func (p *Planner) planStacked(plan *Plan, indices []int) []Warning {
	var warnings []Warning

	tables := make([]*model.Table, len(indices))
	for n, i := range indices {
		tables[n] = p.doc.Tables[i]
	}
	unified := p.builder().BuildUnified(tables)

	sheet := SheetPlan{
		Name:      p.options.sheetName,
		Unified:   unified,
		ColWidths: unified.Widths(),
		Page:      p.doc.Page,
	}
	if sheet.Name == "" {
		sheet.Name = "tables"
	}

	current := 0
	if p.options.includeBodyText {
		span := len(sheet.ColWidths)
		if span < 1 {
			span = 1
		}
		for _, text := range p.doc.BodyText {
			sheet.Placements = append(sheet.Placements, model.Placement{
				DestRow: current,
				DestCol: 0,
				RowSpan: 1,
				ColSpan: span,
				Text:    text,
				Table:   -1,
				Parent:  -1,
				Edges: model.Edges{
					Top: model.EdgeSuppressed, Bottom: model.EdgeSuppressed,
					Left: model.EdgeSuppressed, Right: model.EdgeSuppressed,
				},
			})
			sheet.RowHeights = append(sheet.RowHeights, 0)
			current++
		}
	}

	mapper := p.mapper()
	for _, i := range indices {
		tp, ws := p.placeTable(i, mapper, unified, current)
		warnings = append(warnings, ws...)

		sheet.Placements = append(sheet.Placements, tp.Result.Placements...)
		sheet.RowHeights = append(sheet.RowHeights, tp.Result.RowHeights...)
		sheet.Tables = append(sheet.Tables, tp)

		// Spacer row between tables.
		sheet.RowHeights = append(sheet.RowHeights, 0)
		current += tp.Result.RowsUsed + 1
	}

	plan.Sheets = append(plan.Sheets, sheet)
	return warnings
}

// planPerTable gives each table its own sheet with its own column grid.
func (p *Planner) planPerTable(plan *Plan, indices []int) []Warning {
	var warnings []Warning

	prefix := p.options.sheetName
	if prefix == "" {
		prefix = "Table"
	}

	mapper := p.mapper()
	for n, i := range indices {
		t := p.doc.Tables[i]
		unified := p.builder().BuildUnified([]*model.Table{t})

		tp, ws := p.placeTable(i, mapper, unified, 0)
		warnings = append(warnings, ws...)

		sheet := SheetPlan{
			Name:       fmt.Sprintf("%s%d", prefix, n+1),
			Unified:    unified,
			ColWidths:  unified.Widths(),
			RowHeights: tp.Result.RowHeights,
			Placements: tp.Result.Placements,
			Tables:     []TablePlan{tp},
			Page:       p.doc.Page,
		}
		// Nested expansion reshapes the columns; use its local widths.
		if len(tp.Result.ColWidths) > 0 {
			sheet.ColWidths = tp.Result.ColWidths
		}
		plan.Sheets = append(plan.Sheets, sheet)
	}
	return warnings
}

// placeTable plans one table in whichever mode applies: nested expansion
// when it hosts nested tables, otherwise paragraph splitting when enabled,
// otherwise base placement.
func (p *Planner) placeTable(i int, mapper *grid.Mapper, unified units.BoundaryList, startRow int) (TablePlan, []Warning) {
	t := p.doc.Tables[i]
	tp := TablePlan{Table: i, StartRow: startRow}
	var warnings []Warning

	if p.options.inlineNested {
		if links := p.doc.LinksFor(i); len(links) > 0 {
			exp, ws := placer.PlanNestedExpansion(t, i, links, p.doc.Tables)
			warnings = append(warnings, ws...)
			tp.Mode = ModeNested
			tp.Result = placer.PlaceNested(t, i, exp, startRow)
			warnings = append(warnings, tp.Result.Warnings...)
			return tp, warnings
		}
	}

	mapping := mapper.MapColumns(t.ColumnBoundaries(), unified)
	if p.options.splitParagraphs {
		tp.Mode = ModeSplit
		tp.Result = placer.PlaceSplit(t, i, mapping, startRow)
	} else {
		tp.Mode = ModeBase
		tp.Result = placer.PlaceBase(t, i, mapping, startRow)
	}
	warnings = append(warnings, tp.Result.Warnings...)
	return tp, warnings
}

// WriteXLSX plans and writes the workbook to path.
func (p *Planner) WriteXLSX(path string) ([]Warning, error) {
	plan, warnings, err := p.Plan()
	if err != nil {
		return warnings, err
	}
	w, err := plan.write(p.options.reportSheet)
	if err != nil {
		return warnings, err
	}
	defer w.Close()
	if err := w.SaveAs(path); err != nil {
		return warnings, fmt.Errorf("saving workbook: %w", err)
	}
	return warnings, nil
}

// XLSXBytes plans and serializes the workbook in memory.
func (p *Planner) XLSXBytes() ([]byte, []Warning, error) {
	plan, warnings, err := p.Plan()
	if err != nil {
		return nil, warnings, err
	}
	w, err := plan.write(p.options.reportSheet)
	if err != nil {
		return nil, warnings, err
	}
	defer w.Close()
	data, err := w.Bytes()
	if err != nil {
		return nil, warnings, fmt.Errorf("serializing workbook: %w", err)
	}
	return data, warnings, nil
}
