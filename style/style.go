// Package style resolves border/fill and character style references.
//
// Providers hand the planner small reference identifiers (a cell's
// StyleRef); the actual definitions live in a per-document [Context] built
// once when the document is read and passed by reference afterwards. The
// context is immutable after construction, so planners and writers can
// share it freely across goroutines.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/gridplan/units"
)

// BorderKind is an authored border line kind.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderSolid
	BorderDash
	BorderDot
	BorderDashDot
	BorderDashDotDot
	BorderDouble
	BorderWave
	BorderThick
	BorderThickDouble
	BorderThickDash
	BorderThickDashDot
	BorderThickDashDotDot
)

// ParseBorderKind maps a document border-type name to a BorderKind.
// Unknown names degrade to BorderSolid rather than disappearing.
func ParseBorderKind(name string) BorderKind {
	switch strings.ToUpper(name) {
	case "", "NONE":
		return BorderNone
	case "SOLID":
		return BorderSolid
	case "DASH", "DASHED":
		return BorderDash
	case "DOT", "DOTTED":
		return BorderDot
	case "DASH_DOT":
		return BorderDashDot
	case "DASH_DOT_DOT":
		return BorderDashDotDot
	case "DOUBLE", "DOUBLE_SLIM", "SLIM_THICK_SLIM":
		return BorderDouble
	case "WAVE", "DOUBLE_WAVE":
		return BorderWave
	case "THICK":
		return BorderThick
	case "THICK_DOUBLE":
		return BorderThickDouble
	case "THICK_DASH":
		return BorderThickDash
	case "THICK_DASH_DOT":
		return BorderThickDashDot
	case "THICK_DASH_DOT_DOT":
		return BorderThickDashDotDot
	default:
		return BorderSolid
	}
}

// SpreadsheetStyle returns the OOXML border style index for the kind
// (the numbering excelize uses: 1 thin, 2 medium, 3 dashed, ...).
func (k BorderKind) SpreadsheetStyle() int {
	switch k {
	case BorderNone:
		return 0
	case BorderSolid, BorderWave:
		return 1
	case BorderDash:
		return 3
	case BorderDot:
		return 4
	case BorderDashDot:
		return 9
	case BorderDashDotDot:
		return 11
	case BorderDouble, BorderThickDouble:
		return 6
	case BorderThick:
		return 2
	case BorderThickDash:
		return 8
	case BorderThickDashDot:
		return 10
	case BorderThickDashDotDot:
		return 12
	default:
		return 1
	}
}

// Color is an RGB color. Set distinguishes "no color" from black.
type Color struct {
	R, G, B uint8
	Set     bool
}

// Hex returns the color as RRGGBB, or "" when unset.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses the color notations found in source documents:
// "#RRGGBB", "RGB(r,g,b)", and packed little-endian integers.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return Color{}
	}

	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}
		}
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), Set: true}
	}

	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "RGB(") && strings.HasSuffix(upper, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return Color{}
		}
		var vals [3]uint8
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return Color{}
			}
			vals[i] = uint8(n)
		}
		return Color{R: vals[0], G: vals[1], B: vals[2], Set: true}
	}

	// Packed integer, low byte first.
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Color{
			R:   uint8(v & 0xFF),
			G:   uint8((v >> 8) & 0xFF),
			B:   uint8((v >> 16) & 0xFF),
			Set: true,
		}
	}

	return Color{}
}

// Sides holds one border kind per edge of a cell.
type Sides struct {
	Left, Right, Top, Bottom BorderKind
}

// BorderFill is one border/fill definition, addressed by reference id.
type BorderFill struct {
	Sides      Sides
	Background Color
}

// Font is a resolved character style.
type Font struct {
	Name      string
	Size      units.Length // 1000 = 10pt
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Color     Color
}

// SizePoints returns the font size in points, or 0 when unspecified.
func (f Font) SizePoints() float64 {
	if f.Size <= 0 {
		return 0
	}
	return f.Size.Points()
}

// Context is the immutable per-document style table. The zero value is
// usable and resolves everything to defaults.
type Context struct {
	borderFills map[string]BorderFill
	fonts       map[string]Font

	// defaultFill names the reference that supplies a table's default
	// borders. It is explicit data rather than "whichever cell was seen
	// first", so callers can assert it.
	defaultFill string
}

// NewContext builds a Context from parsed definitions. The maps are copied;
// later mutation of the arguments does not affect the context. defaultFill
// names the reference used when a cell has no StyleRef of its own.
func NewContext(fills map[string]BorderFill, fonts map[string]Font, defaultFill string) *Context {
	ctx := &Context{
		borderFills: make(map[string]BorderFill, len(fills)),
		fonts:       make(map[string]Font, len(fonts)),
		defaultFill: defaultFill,
	}
	for k, v := range fills {
		ctx.borderFills[k] = v
	}
	for k, v := range fonts {
		ctx.fonts[k] = v
	}
	return ctx
}

// DefaultFillRef returns the reference id the context falls back to for
// cells without a style reference.
func (c *Context) DefaultFillRef() string {
	if c == nil {
		return ""
	}
	return c.defaultFill
}

// BorderFill resolves a reference id. Unknown or empty ids resolve through
// the default reference; if that too is missing, a zero definition (no
// borders, no fill) is returned.
func (c *Context) BorderFill(ref string) BorderFill {
	if c == nil {
		return BorderFill{}
	}
	if ref != "" {
		if bf, ok := c.borderFills[ref]; ok {
			return bf
		}
	}
	if c.defaultFill != "" {
		if bf, ok := c.borderFills[c.defaultFill]; ok {
			return bf
		}
	}
	return BorderFill{}
}

// Font resolves a character style reference; unknown ids return the zero
// Font, which writers render with their own defaults.
func (c *Context) Font(ref string) Font {
	if c == nil {
		return Font{}
	}
	return c.fonts[ref]
}
