package style

import "testing"

func TestParseBorderKind(t *testing.T) {
	tests := []struct {
		in   string
		want BorderKind
	}{
		{"NONE", BorderNone},
		{"", BorderNone},
		{"SOLID", BorderSolid},
		{"solid", BorderSolid},
		{"DASH", BorderDash},
		{"DOT", BorderDot},
		{"DOUBLE", BorderDouble},
		{"THICK", BorderThick},
		{"THICK_DASH_DOT_DOT", BorderThickDashDotDot},
		{"SOMETHING_NEW", BorderSolid}, // unknown kinds stay visible
	}
	for _, tt := range tests {
		if got := ParseBorderKind(tt.in); got != tt.want {
			t.Errorf("ParseBorderKind(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSpreadsheetStyle(t *testing.T) {
	if got := BorderNone.SpreadsheetStyle(); got != 0 {
		t.Errorf("BorderNone style = %d, want 0", got)
	}
	if got := BorderSolid.SpreadsheetStyle(); got != 1 {
		t.Errorf("BorderSolid style = %d, want 1", got)
	}
	if got := BorderDouble.SpreadsheetStyle(); got != 6 {
		t.Errorf("BorderDouble style = %d, want 6", got)
	}
	if got := BorderThick.SpreadsheetStyle(); got != 2 {
		t.Errorf("BorderThick style = %d, want 2", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string // hex, "" for unset
	}{
		{"#FF8000", "FF8000"},
		{"RGB(255, 128, 0)", "FF8000"},
		{"rgb(1,2,3)", "010203"},
		{"255", "FF0000"},   // packed, low byte is red
		{"65280", "00FF00"}, // green
		{"16711680", "0000FF"},
		{"", ""},
		{"none", ""},
		{"#XYZXYZ", ""},
		{"RGB(300,0,0)", ""},
	}
	for _, tt := range tests {
		got := ParseColor(tt.in)
		if got.Hex() != tt.want {
			t.Errorf("ParseColor(%q).Hex() = %q, want %q", tt.in, got.Hex(), tt.want)
		}
	}
}

func TestContextResolution(t *testing.T) {
	fills := map[string]BorderFill{
		"3": {Sides: Sides{Top: BorderSolid, Bottom: BorderSolid, Left: BorderSolid, Right: BorderSolid}},
		"7": {Sides: Sides{Top: BorderDouble}},
	}
	fonts := map[string]Font{
		"1": {Name: "Batang", Size: 1000, Bold: true},
	}
	ctx := NewContext(fills, fonts, "3")

	if got := ctx.BorderFill("7"); got.Sides.Top != BorderDouble {
		t.Errorf("BorderFill(7).Top = %d", got.Sides.Top)
	}
	// Unknown and empty refs fall back to the explicit default.
	if got := ctx.BorderFill("99"); got.Sides.Left != BorderSolid {
		t.Errorf("unknown ref should resolve via default, got %+v", got)
	}
	if got := ctx.BorderFill(""); got.Sides.Left != BorderSolid {
		t.Errorf("empty ref should resolve via default, got %+v", got)
	}
	if got := ctx.DefaultFillRef(); got != "3" {
		t.Errorf("DefaultFillRef() = %q, want 3", got)
	}

	f := ctx.Font("1")
	if f.Name != "Batang" || !f.Bold || f.SizePoints() != 10 {
		t.Errorf("Font(1) = %+v", f)
	}
	if ctx.Font("nope") != (Font{}) {
		t.Error("unknown font ref should be zero Font")
	}
}

func TestContextImmutableFromArguments(t *testing.T) {
	fills := map[string]BorderFill{"1": {Sides: Sides{Top: BorderSolid}}}
	ctx := NewContext(fills, nil, "1")

	fills["1"] = BorderFill{Sides: Sides{Top: BorderDouble}}
	if got := ctx.BorderFill("1"); got.Sides.Top != BorderSolid {
		t.Error("context should copy its input maps")
	}
}

func TestZeroContext(t *testing.T) {
	var ctx *Context
	if ctx.BorderFill("x") != (BorderFill{}) {
		t.Error("nil context should resolve to zero BorderFill")
	}
	if ctx.Font("x") != (Font{}) {
		t.Error("nil context should resolve to zero Font")
	}
	if ctx.DefaultFillRef() != "" {
		t.Error("nil context default ref should be empty")
	}
}
