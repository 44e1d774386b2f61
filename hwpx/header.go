package hwpx

import (
	"github.com/tsawler/gridplan/style"
	"github.com/tsawler/gridplan/units"
)

// styleContext builds the resolved style table from Contents/header.xml.
// Returns nil when the document carries no header.
func (r *Reader) styleContext() *style.Context {
	if r.header == nil {
		return nil
	}
	ref := &r.header.RefList

	fills := make(map[string]style.BorderFill, len(ref.BorderFills.BorderFills))
	defaultFill := ""
	for _, bf := range ref.BorderFills.BorderFills {
		def := style.BorderFill{
			Sides: style.Sides{
				Left:   style.ParseBorderKind(bf.Left.Type),
				Right:  style.ParseBorderKind(bf.Right.Type),
				Top:    style.ParseBorderKind(bf.Top.Type),
				Bottom: style.ParseBorderKind(bf.Bottom.Type),
			},
		}
		if bf.Fill != nil && bf.Fill.WinBrush != nil {
			def.Background = style.ParseColor(bf.Fill.WinBrush.FaceColor)
		}
		fills[bf.ID] = def
		if defaultFill == "" {
			defaultFill = bf.ID
		}
	}

	// Hangul faces carry the primary font names.
	faces := make(map[string]string)
	for _, ff := range ref.FontFaces.FontFaces {
		if ff.Lang != "HANGUL" {
			continue
		}
		for _, f := range ff.Fonts {
			faces[f.ID] = f.Face
		}
	}

	fonts := make(map[string]style.Font, len(ref.CharProps.CharProps))
	for _, cp := range ref.CharProps.CharProps {
		f := style.Font{
			Size:   units.Length(cp.Height),
			Bold:   cp.Bold != nil,
			Italic: cp.Italic != nil,
			Color:  style.ParseColor(cp.TextColor),
		}
		if cp.Underline != nil && cp.Underline.Type != "NONE" {
			f.Underline = true
		}
		if cp.Strikeout != nil && cp.Strikeout.Type != "NONE" {
			f.Strike = true
		}
		if cp.FontRef != nil {
			f.Name = faces[cp.FontRef.Hangul]
		}
		fonts[cp.ID] = f
	}

	return style.NewContext(fills, fonts, defaultFill)
}
