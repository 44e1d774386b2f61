// Package gridplan provides a fluent API for reconciling document tables
// onto a shared spreadsheet grid and writing the result as an Excel
// workbook.
//
// Basic usage:
//
//	warnings, err := gridplan.Open("report.hwpx").WriteXLSX("report.xlsx")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", gridplan.FormatWarnings(warnings))
//	}
//
// With options:
//
//	plan, warnings, err := gridplan.Open("report.hwpx").
//	    SplitParagraphs().
//	    IncludeBodyText().
//	    Plan()
//
// For advanced use cases, the lower-level hwpx, grid, placer, and xlsxout
// packages are also available.
package gridplan

import (
	"fmt"
	"strings"

	"github.com/tsawler/gridplan/model"
)

// Warning is a non-fatal condition noted while planning: a dropped cell,
// a malformed table, a nested table that needed degrading.
type Warning = model.Warning

// FormatWarnings renders warnings as a multi-line string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range warnings {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] %s", w.Code, w.Message)
	}
	return b.String()
}

// Open prepares a Planner for the given source file. The format is
// detected from the file content when the planner first needs it, so Open
// itself never fails; errors surface on the terminal operations.
//
// Example:
//
//	plan, warnings, err := gridplan.Open("report.hwpx").Plan()
func Open(filename string) *Planner {
	return &Planner{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates a Planner over an already-extracted document,
// bypassing format detection. Useful with the hwpx or htmltab readers
// directly, or with tables built in memory.
func FromDocument(doc *model.Document) *Planner {
	return &Planner{
		doc:       doc,
		docLoaded: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustPlan wraps a call returning (T, []Warning, error), panicking on
// error and discarding warnings.
//
// Example:
//
//	plan := gridplan.MustPlan(gridplan.Open("report.hwpx").Plan())
func MustPlan[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
