package hwpx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/units"
)

// ErrNoSections reports a ZIP archive with no Contents/section*.xml
// entries, meaning the file is not an HWPX document.
var ErrNoSections = errors.New("no Contents/section*.xml files: not an HWPX document")

// Reader provides access to HWPX document content.
type Reader struct {
	zc       io.Closer
	files    []*zip.File
	header   *headerXML
	sections []*sectionXML
}

// Open opens an HWPX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zc: zr, files: zr.File}
	if err := r.parse(); err != nil {
		zr.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads an HWPX document from an in-memory or seekable source.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{files: zr.File}
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zc != nil {
		err := r.zc.Close()
		r.zc = nil
		return err
	}
	return nil
}

func (r *Reader) parse() error {
	names := r.sectionNames()
	if len(names) == 0 {
		return ErrNoSections
	}

	// Style definitions are optional; a document without a header still
	// yields tables.
	if data, err := r.getFileContent("Contents/header.xml"); err == nil {
		var h headerXML
		if err := xml.Unmarshal(data, &h); err == nil {
			r.header = &h
		}
	}

	for _, name := range names {
		data, err := r.getFileContent(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		var sec sectionXML
		if err := xml.Unmarshal(data, &sec); err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		r.sections = append(r.sections, &sec)
	}
	return nil
}

// sectionNames returns the Contents/section*.xml entries in order.
func (r *Reader) sectionNames() []string {
	var names []string
	for _, f := range r.files {
		if strings.HasPrefix(f.Name, "Contents/section") && strings.HasSuffix(f.Name, ".xml") {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.files {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// Document extracts tables, nesting links, styles, page geometry, and body
// text. Tables are numbered in discovery order: all top-level tables first
// in document order, then nested tables as their parents are walked.
func (r *Reader) Document() (*model.Document, []model.Warning, error) {
	doc := &model.Document{
		Styles: r.styleContext(),
		Page:   r.pageSetup(),
	}

	// Top-level walk: body paragraphs contribute text, and seed the
	// table worklist.
	var pending []*tblXML
	for _, sec := range r.sections {
		for i := range sec.Paragraphs {
			p := &sec.Paragraphs[i]
			tbls := paragraphTables(p)
			pending = append(pending, tbls...)
			if text := paragraphText(p); text != "" && len(tbls) == 0 {
				doc.BodyText = append(doc.BodyText, text)
			}
		}
	}

	// Worklist: converting a table may discover tables nested in its
	// cells, which are appended behind it with a link back.
	type workItem struct {
		tbl      *tblXML
		parent   int // -1 for top level
		row, col int
	}
	var work []workItem
	for _, t := range pending {
		work = append(work, workItem{tbl: t, parent: -1})
	}

	var warnings []model.Warning
	for i := 0; i < len(work); i++ {
		item := work[i]
		tbl, children, ws := convertTable(item.tbl, i)
		warnings = append(warnings, ws...)
		doc.Tables = append(doc.Tables, tbl)

		if item.parent >= 0 {
			doc.Links = append(doc.Links, model.NestedLink{
				Parent:    item.parent,
				ParentRow: item.row,
				ParentCol: item.col,
				Child:     i,
			})
		}
		for _, c := range children {
			work = append(work, workItem{tbl: c.tbl, parent: i, row: c.row, col: c.col})
		}
	}

	return doc, warnings, nil
}

// nestedRef points at a table found inside a cell.
type nestedRef struct {
	tbl      *tblXML
	row, col int
}

// convertTable builds a model table from its XML form and reports any
// tables nested in its cells.
func convertTable(x *tblXML, index int) (*model.Table, []nestedRef, []model.Warning) {
	t := &model.Table{
		ID:       x.ID,
		RowCount: x.RowCnt,
		ColCount: x.ColCnt,
	}
	if x.Size != nil {
		t.Width = units.Length(x.Size.Width)
		t.Height = units.Length(x.Size.Height)
	}

	var nested []nestedRef
	var warnings []model.Warning

	for ri := range x.Rows {
		for ci := range x.Rows[ri].Cells {
			tc := &x.Rows[ri].Cells[ci]

			cell := model.Cell{
				Row:      tc.Addr.RowAddr,
				Col:      tc.Addr.ColAddr,
				RowSpan:  tc.Span.RowSpan,
				ColSpan:  tc.Span.ColSpan,
				Width:    units.Length(tc.Size.Width),
				Height:   units.Length(tc.Size.Height),
				StyleRef: tc.BorderFillIDRef,
			}
			if cell.RowSpan == 0 {
				cell.RowSpan = 1
			}
			if cell.ColSpan == 0 {
				cell.ColSpan = 1
			}

			if tc.SubList != nil {
				for pi := range tc.SubList.Paragraphs {
					p := &tc.SubList.Paragraphs[pi]
					if cell.FontRef == "" {
						for _, run := range p.Runs {
							if run.CharPrIDRef != "" {
								cell.FontRef = run.CharPrIDRef
								break
							}
						}
					}
					for _, nt := range paragraphTables(p) {
						nested = append(nested, nestedRef{tbl: nt, row: cell.Row, col: cell.Col})
					}
					text := paragraphText(p)
					if text == "" && len(paragraphTables(p)) > 0 {
						// A paragraph that only hosts a table is
						// not a text paragraph.
						continue
					}
					cell.Paragraphs = append(cell.Paragraphs, model.Paragraph{
						Text:   text,
						Height: paragraphHeight(p),
					})
				}
			}

			t.Cells = append(t.Cells, cell)

			// Track extents for tables with missing or stale counts.
			if end := cell.Row + cell.RowSpan; end > t.RowCount {
				t.RowCount = end
			}
			if end := cell.Col + cell.ColSpan; end > t.ColCount {
				t.ColCount = end
			}
		}
	}

	if x.RowCnt > 0 && t.RowCount != x.RowCnt || x.ColCnt > 0 && t.ColCount != x.ColCnt {
		warnings = append(warnings, model.Warningf(
			model.WarnMalformedTable, index, -1, -1,
			"table %q declares %dx%d but cells reach %dx%d",
			x.ID, x.RowCnt, x.ColCnt, t.RowCount, t.ColCount))
	}

	return t, nested, warnings
}

// paragraphTables collects the tables carried by a paragraph's runs,
// whether wrapped in a ctrl element or not.
func paragraphTables(p *paraXML) []*tblXML {
	var out []*tblXML
	for ri := range p.Runs {
		run := &p.Runs[ri]
		for ti := range run.Tables {
			out = append(out, &run.Tables[ti])
		}
		for ci := range run.Ctrls {
			for ti := range run.Ctrls[ci].Tables {
				out = append(out, &run.Ctrls[ci].Tables[ti])
			}
		}
	}
	return out
}

// paragraphText joins a paragraph's run texts. Hangul is normalized to
// composed form; files written on macOS often carry decomposed jamo.
func paragraphText(p *paraXML) string {
	var b strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Texts {
			b.WriteString(t)
		}
	}
	return norm.NFC.String(b.String())
}

// paragraphHeight measures a paragraph from its laid-out line segments:
// the span from the first line's top to the last line's bottom.
func paragraphHeight(p *paraXML) units.Length {
	if len(p.LineSegs) == 0 {
		return 0
	}
	first := p.LineSegs[0]
	last := p.LineSegs[len(p.LineSegs)-1]
	return units.Length(last.VertPos + last.VertSize - first.VertPos)
}

// pageSetup extracts page geometry from the first section's properties,
// or nil when no section carries any.
func (r *Reader) pageSetup() *model.PageSetup {
	for _, sec := range r.sections {
		for i := range sec.Paragraphs {
			for j := range sec.Paragraphs[i].Runs {
				secPr := sec.Paragraphs[i].Runs[j].SecPr
				if secPr == nil || secPr.PagePr == nil {
					continue
				}
				pp := secPr.PagePr
				ps := &model.PageSetup{
					Width:     units.Length(pp.Width),
					Height:    units.Length(pp.Height),
					Landscape: pp.Landscape == "WIDELY" || pp.Landscape == "ROTATE",
				}
				if m := pp.Margin; m != nil {
					ps.Margin = model.PageMargin{
						Left:   units.Length(m.Left),
						Right:  units.Length(m.Right),
						Top:    units.Length(m.Top),
						Bottom: units.Length(m.Bottom),
						Header: units.Length(m.Header),
						Footer: units.Length(m.Footer),
						Gutter: units.Length(m.Gutter),
					}
				}
				return ps
			}
		}
	}
	return nil
}
