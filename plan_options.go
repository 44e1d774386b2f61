package gridplan

import (
	"github.com/tsawler/gridplan/units"
)

// PlanOptions holds configuration for planning and writing.
type PlanOptions struct {
	// Placement modes
	splitParagraphs bool
	inlineNested    bool

	// Layout
	sheetPerTable   bool
	includeBodyText bool
	reportSheet     bool
	sheetName       string

	// Geometry tuning (0 means package default)
	mergeThreshold units.Length
	matchTolerance units.Length
}

// defaultOptions returns the default planning options.
func defaultOptions() PlanOptions {
	return PlanOptions{
		splitParagraphs: false,
		inlineNested:    true,
		sheetPerTable:   false,
		includeBodyText: false,
		reportSheet:     false,
		sheetName:       "",
	}
}

// clone creates a copy of PlanOptions.
func (o PlanOptions) clone() PlanOptions {
	return o
}

// SplitParagraphs places every paragraph of a cell in its own destination
// row. Tables hosting nested tables keep nested expansion instead; the two
// modes never combine on one table.
func (p *Planner) SplitParagraphs() *Planner {
	np := p.clone()
	np.options.splitParagraphs = true
	return np
}

// FlattenNested disables inline nested-table expansion. Nested tables are
// then planned as independent tables below their parents.
func (p *Planner) FlattenNested() *Planner {
	np := p.clone()
	np.options.inlineNested = false
	return np
}

// SheetPerTable gives every top-level table its own worksheet instead of
// stacking them on one sheet, matching the source's per-object layout.
func (p *Planner) SheetPerTable() *Planner {
	np := p.clone()
	np.options.sheetPerTable = true
	return np
}

// IncludeBodyText interleaves the document's body paragraphs between the
// tables, each on its own row spanning the unified grid.
func (p *Planner) IncludeBodyText() *Planner {
	np := p.clone()
	np.options.includeBodyText = true
	return np
}

// WithReportSheet appends a worksheet listing every placement's source and
// destination coordinates, for auditing the conversion.
func (p *Planner) WithReportSheet() *Planner {
	np := p.clone()
	np.options.reportSheet = true
	return np
}

// SheetName sets the worksheet name for the stacked layout. In
// SheetPerTable mode it becomes the name prefix.
func (p *Planner) SheetName(name string) *Planner {
	np := p.clone()
	np.options.sheetName = name
	return np
}

// MergeThreshold overrides the distance under which nearby column
// boundaries from different tables are unified into one.
func (p *Planner) MergeThreshold(d units.Length) *Planner {
	np := p.clone()
	np.options.mergeThreshold = d
	return np
}

// MatchTolerance overrides the distance under which a table's boundary
// snaps to a unified boundary during column mapping.
func (p *Planner) MatchTolerance(d units.Length) *Planner {
	np := p.clone()
	np.options.matchTolerance = d
	return np
}
