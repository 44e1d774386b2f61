package model

import (
	"fmt"
	"strings"

	"github.com/tsawler/gridplan/units"
)

// Paragraph is one paragraph of cell content. Height is the authored
// paragraph height, used when rows are split per paragraph.
type Paragraph struct {
	Text   string
	Height units.Length
}

// Cell represents one anchored cell of a table. Row/Col are 0-based grid
// coordinates of the cell's top-left anchor; RowSpan/ColSpan are at least 1.
type Cell struct {
	Row, Col         int
	RowSpan, ColSpan int

	// Authored size of the whole cell, spans included.
	Width, Height units.Length

	Paragraphs []Paragraph

	// StyleRef identifies the cell's border/fill definition in the
	// document's style context. Empty means unstyled.
	StyleRef string

	// FontRef identifies the character style of the cell's text.
	FontRef string
}

// Text returns the cell's full content, paragraphs joined by newlines.
func (c *Cell) Text() string {
	if len(c.Paragraphs) == 0 {
		return ""
	}
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// ParagraphCount returns the number of paragraphs, never less than 1:
// an empty cell still occupies one destination row.
func (c *Cell) ParagraphCount() int {
	if len(c.Paragraphs) < 1 {
		return 1
	}
	return len(c.Paragraphs)
}

// Table represents a source table. Cells hold one entry per anchored cell;
// positions covered by a span have no entry of their own.
type Table struct {
	ID                 string
	RowCount, ColCount int

	// Authored overall size, used as the fallback when individual cell
	// sizes are missing.
	Width, Height units.Length

	Cells []Cell
}

// CellAt returns the cell covering (row, col): the cell anchored there, or
// the spanning cell when the position lies under a merge. Returns nil for
// out-of-range coordinates and for gaps in malformed tables.
func (t *Table) CellAt(row, col int) *Cell {
	for i := range t.Cells {
		c := &t.Cells[i]
		if row >= c.Row && row < c.Row+c.RowSpan && col >= c.Col && col < c.Col+c.ColSpan {
			return c
		}
	}
	return nil
}

// Validate checks that the cells tile the declared RowCount×ColCount grid
// exactly once: every position covered, no overlaps, no cell out of range.
// Providers are trusted to produce well-formed tables, but malformed input
// documents do occur, so the planner validates before placing.
func (t *Table) Validate() error {
	if t.RowCount <= 0 || t.ColCount <= 0 {
		return fmt.Errorf("table %q: empty grid %dx%d", t.ID, t.RowCount, t.ColCount)
	}

	covered := make([]bool, t.RowCount*t.ColCount)
	for i := range t.Cells {
		c := &t.Cells[i]
		if c.RowSpan < 1 || c.ColSpan < 1 {
			return fmt.Errorf("table %q: cell (%d,%d) has non-positive span", t.ID, c.Row, c.Col)
		}
		if c.Row < 0 || c.Col < 0 || c.Row+c.RowSpan > t.RowCount || c.Col+c.ColSpan > t.ColCount {
			return fmt.Errorf("table %q: cell (%d,%d) span %dx%d exceeds grid %dx%d",
				t.ID, c.Row, c.Col, c.RowSpan, c.ColSpan, t.RowCount, t.ColCount)
		}
		for r := c.Row; r < c.Row+c.RowSpan; r++ {
			for cc := c.Col; cc < c.Col+c.ColSpan; cc++ {
				idx := r*t.ColCount + cc
				if covered[idx] {
					return fmt.Errorf("table %q: cells overlap at (%d,%d)", t.ID, r, cc)
				}
				covered[idx] = true
			}
		}
	}
	for idx, ok := range covered {
		if !ok {
			return fmt.Errorf("table %q: gap at (%d,%d)", t.ID, idx/t.ColCount, idx%t.ColCount)
		}
	}
	return nil
}

// NestedLink declares that the table at index Child is embedded inside the
// cell anchored at (ParentRow, ParentCol) of the table at index Parent.
// Indices refer to the document-order table slice. More than one link may
// target the same parent cell; the planner treats the first as primary.
type NestedLink struct {
	Parent    int
	ParentRow int
	ParentCol int
	Child     int
}
