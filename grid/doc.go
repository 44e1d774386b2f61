// Package grid reconciles the column geometry of independently authored
// tables onto one shared destination grid.
//
// Each table carries its own column boundaries (cumulative widths starting
// at 0) that were never designed to align with any other table's. The
// [Builder] unions all boundaries into a single ascending list, coalescing
// near-duplicate edges within a merge threshold. The [Mapper] then maps one
// table's boundaries onto index ranges of that unified list using
// nearest-match within a looser tolerance, so every table can share one
// visual grid without any table's true widths being distorted.
//
// # Tolerances
//
// Two tolerances govern reconciliation:
//
//   - merge threshold (default ~0.35 mm): boundaries closer than this are
//     treated as the same edge when building the unified list. The later
//     (larger) offset wins, never a midpoint, so rounding error does not
//     compound across many cells.
//   - match tolerance (default ~0.7 mm): when mapping a table onto the
//     unified list, a local boundary matches the nearest unified boundary
//     only within this distance. A column whose endpoints both fail to
//     match is excluded from the mapping rather than stretched.
package grid
