// Package hwpx reads HWPX documents, the OWPML zip container used by the
// Hangul word processor.
//
// The package extracts tables (with their nesting relationships), cell
// geometry in source units, paragraph text with line heights, the style
// definitions from Contents/header.xml, and the section's page geometry.
// It does not render text or handle embedded media.
//
// All lengths are HWPUNIT (1/7200 inch) as authored; conversion to
// spreadsheet units happens downstream.
package hwpx
