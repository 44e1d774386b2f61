// Package model defines the value types shared by the gridplan library:
// source tables, cells, and paragraphs produced by a table provider, the
// nested-table links between them, and the Placement records the planner
// emits for a sheet writer.
//
// # Source types
//
// [Table], [Cell], and [Paragraph] form an immutable value graph. They are
// created once per document by a provider (the hwpx or htmltab packages)
// and never mutated afterwards. A table's cells are expected to tile its
// declared row/column grid exactly; [Table.Validate] checks this invariant
// defensively because upstream data is not always well formed.
//
// # Nested tables
//
// A [NestedLink] declares that one table is embedded inside a single cell
// of another. Links reference tables by their document-order index, so a
// slice of tables plus a slice of links fully describes the hierarchy.
//
// # Output types
//
// [Placement] is the planner's sole output record: where a piece of source
// content lands in the destination grid, how many destination cells it
// spans, and what role each of its edges plays when borders are drawn.
package model
