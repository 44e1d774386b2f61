package model

import "fmt"

// WarningCode classifies a non-fatal planning irregularity.
type WarningCode int

const (
	// WarnMappingGap reports a cell dropped because its column has no
	// counterpart in the unified grid within tolerance.
	WarnMappingGap WarningCode = iota
	// WarnMalformedTable reports a table whose cells do not tile its
	// declared grid; the table is skipped, siblings still convert.
	WarnMalformedTable
	// WarnAmbiguousNesting reports a second or later nested table sharing
	// one parent cell; only the first is placed inline.
	WarnAmbiguousNesting
	// WarnMissingNestedSize reports a nested table with no usable
	// width/height data; the parent extent is divided evenly instead.
	WarnMissingNestedSize
)

// String returns the code name.
func (c WarningCode) String() string {
	switch c {
	case WarnMappingGap:
		return "mapping-gap"
	case WarnMalformedTable:
		return "malformed-table"
	case WarnAmbiguousNesting:
		return "ambiguous-nesting"
	case WarnMissingNestedSize:
		return "missing-nested-size"
	default:
		return "unknown"
	}
}

// Warning records a non-fatal issue encountered while planning. Nothing in
// the planner aborts for ordinary document irregularities; warnings let the
// caller decide what to surface.
type Warning struct {
	Code    WarningCode
	Message string

	// Table is the document-order index of the affected table; Row/Col
	// point at the affected cell when one is involved, -1 otherwise.
	Table    int
	Row, Col int
}

// Warningf builds a Warning with a formatted message.
func Warningf(code WarningCode, table, row, col int, format string, args ...any) Warning {
	return Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Table:   table,
		Row:     row,
		Col:     col,
	}
}
