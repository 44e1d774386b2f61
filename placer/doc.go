// Package placer turns source tables into destination-grid placements.
//
// The placer consumes the column reconciliation produced by the grid
// package and emits one [model.Placement] per piece of content, with
// destination spans recomputed against the unified grid rather than copied
// from the source. Three placement modes exist:
//
//   - Base: one placement per cell; row geometry passes through unchanged.
//   - Paragraph split: every paragraph of a cell occupies its own
//     destination row. Rows grow to the largest paragraph count anchored
//     in them; surplus rows from authored row spans attach to a cell's
//     last paragraph.
//   - Nested expansion: a table embedded in a parent cell grows the
//     destination grid locally (never the whole sheet) so the child fits
//     inline without disturbing sibling cells.
//
// A table uses either paragraph splitting or nested expansion, never both.
//
// Irregular input degrades instead of failing: cells whose columns cannot
// be mapped are dropped with a [model.WarnMappingGap] warning, and extra
// nested tables sharing one parent cell are reported rather than placed.
package placer
