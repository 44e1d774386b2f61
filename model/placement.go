package model

// EdgeRole describes how one edge of a placed cell should be rendered.
type EdgeRole int

const (
	// EdgeAuthored renders the edge with the source cell's own border style.
	EdgeAuthored EdgeRole = iota
	// EdgeSuppressed hides the edge; it lies inside a merged rectangle.
	EdgeSuppressed
	// EdgeNested renders the distinguishing style for interior edges of an
	// inlined nested table.
	EdgeNested
	// EdgeInherited renders the parent cell's border style on a nested
	// child edge that touches the parent cell's own outline.
	EdgeInherited
)

// String returns the role name.
func (r EdgeRole) String() string {
	switch r {
	case EdgeAuthored:
		return "authored"
	case EdgeSuppressed:
		return "suppressed"
	case EdgeNested:
		return "nested"
	case EdgeInherited:
		return "inherited"
	default:
		return "unknown"
	}
}

// Edges holds the resolved role for each side of a placement.
type Edges struct {
	Top, Bottom, Left, Right EdgeRole
}

// Placement describes where and how large one piece of source content
// renders in the destination grid. Coordinates are 0-based; a sheet writer
// converts to its own addressing.
type Placement struct {
	DestRow, DestCol int
	RowSpan, ColSpan int

	// Text is the content for this placement. In paragraph-split mode each
	// paragraph of a cell gets its own placement, so Text holds a single
	// paragraph there and the full cell content otherwise.
	Text string

	// Cell is the source cell this placement was derived from.
	Cell *Cell

	// Table is the document-order index of the source table. Para is the
	// paragraph index within the cell (0 unless splitting).
	Table int
	Para  int

	// Nested marks placements that belong to an inlined child table;
	// Parent is then the parent table's index, otherwise -1.
	Nested bool
	Parent int

	// InheritRef carries the parent cell's style reference for edges
	// resolved as EdgeInherited. Empty when no edge inherits.
	InheritRef string

	Edges Edges
}

// Merged reports whether the placement covers more than one destination
// cell and therefore requires a merge.
func (p *Placement) Merged() bool {
	return p.RowSpan > 1 || p.ColSpan > 1
}
