// Package units provides integer document-length arithmetic and conversions.
//
// All geometry in this library is expressed in HWPUNIT, the native unit of
// the source documents (1 pt = 100 HWPUNIT, 1 inch = 7200 HWPUNIT). Keeping
// lengths integral avoids rounding drift when many small cell widths are
// accumulated into boundary offsets.
package units

// Length is a distance in HWPUNIT.
type Length int

// Conversion constants.
const (
	PerPoint Length = 100
	PerInch  Length = 7200

	// Spreadsheet column widths are expressed in character units
	// (~8.43 px per character at 96 DPI). One character unit works out
	// to roughly 632 HWPUNIT.
	perColumnChar = 632
)

// Derived floating-point factors.
const (
	perCM = float64(PerInch) / 2.54 // ≈ 2834.6
	perMM = float64(PerInch) / 25.4 // ≈ 283.46
)

// Points converts a length to typographic points.
func (l Length) Points() float64 { return float64(l) / float64(PerPoint) }

// Inches converts a length to inches.
func (l Length) Inches() float64 { return float64(l) / float64(PerInch) }

// Millimeters converts a length to millimeters.
func (l Length) Millimeters() float64 { return float64(l) / perMM }

// Centimeters converts a length to centimeters.
func (l Length) Centimeters() float64 { return float64(l) / perCM }

// ColumnWidth converts a length to a spreadsheet column width in
// character units, clamped to a minimum of 1.
func (l Length) ColumnWidth() float64 {
	w := float64(l) / perColumnChar
	if w < 1 {
		return 1
	}
	return w
}

// RowHeight converts a length to a spreadsheet row height in points,
// clamped to a minimum of 10.
func (l Length) RowHeight() float64 {
	h := l.Points()
	if h < 10 {
		return 10
	}
	return h
}

// FromPoints converts typographic points to a Length.
func FromPoints(pt float64) Length { return Length(pt * float64(PerPoint)) }

// FromMillimeters converts millimeters to a Length.
func FromMillimeters(mm float64) Length { return Length(mm * perMM) }

// FromInches converts inches to a Length.
func FromInches(in float64) Length { return Length(in * float64(PerInch)) }

// BoundaryList is a strictly increasing sequence of column-edge offsets.
// The first element is always 0. A list with n+1 boundaries describes n
// column segments.
type BoundaryList []Length

// Segments returns the number of column segments the list describes.
func (b BoundaryList) Segments() int {
	if len(b) <= 1 {
		return 0
	}
	return len(b) - 1
}

// Widths returns the width of each segment.
func (b BoundaryList) Widths() []Length {
	if len(b) <= 1 {
		return nil
	}
	widths := make([]Length, len(b)-1)
	for i := 0; i < len(b)-1; i++ {
		widths[i] = b[i+1] - b[i]
	}
	return widths
}

// Valid reports whether the list starts at 0 and is strictly increasing.
func (b BoundaryList) Valid() bool {
	if len(b) == 0 || b[0] != 0 {
		return false
	}
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			return false
		}
	}
	return true
}
