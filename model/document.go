package model

import (
	"github.com/tsawler/gridplan/style"
	"github.com/tsawler/gridplan/units"
)

// PageMargin holds the page margins of a source document.
type PageMargin struct {
	Left, Right units.Length
	Top, Bottom units.Length
	Header      units.Length
	Footer      units.Length
	Gutter      units.Length
}

// PageSetup describes the source document's page geometry, used to pick a
// spreadsheet paper size and print layout.
type PageSetup struct {
	Width     units.Length
	Height    units.Length
	Landscape bool
	Margin    PageMargin
}

// BodyWidth returns the horizontal extent available to content.
func (p PageSetup) BodyWidth() units.Length {
	return p.Width - p.Margin.Left - p.Margin.Right - p.Margin.Gutter
}

// BodyHeight returns the vertical extent available to content.
func (p PageSetup) BodyHeight() units.Length {
	return p.Height - p.Margin.Top - p.Margin.Bottom - p.Margin.Header - p.Margin.Footer
}

// Document is what a source reader hands to the planner: every table in
// document order, the nesting relationships between them, the resolved
// style context, and whatever page geometry the source carried.
type Document struct {
	// Tables holds all tables in document order, nested ones included.
	// NestedLink indices refer into this slice.
	Tables []*Table

	// Links records which tables live inside cells of other tables.
	Links []NestedLink

	// Styles resolves the StyleRef identifiers found on cells. May be
	// nil when the source carries no style information.
	Styles *style.Context

	// Page is nil when the source has no page geometry.
	Page *PageSetup

	// BodyText holds text paragraphs that sit between tables at the top
	// level of the document.
	BodyText []string
}

// TopLevelTables returns the indices of tables that are not nested inside
// another table, in document order.
func (d *Document) TopLevelTables() []int {
	nested := make(map[int]bool, len(d.Links))
	for _, l := range d.Links {
		nested[l.Child] = true
	}
	var top []int
	for i := range d.Tables {
		if !nested[i] {
			top = append(top, i)
		}
	}
	return top
}

// LinksFor returns the nested links whose parent is the given table index,
// in document order.
func (d *Document) LinksFor(parent int) []NestedLink {
	var out []NestedLink
	for _, l := range d.Links {
		if l.Parent == parent {
			out = append(out, l)
		}
	}
	return out
}
