// Package htmltab extracts tables from HTML documents.
//
// HTML tables carry no authored geometry, so every table gets a synthetic
// uniform width of columnWidth per column. That keeps same-width columns
// across tables aligned on the unified grid; rows keep zero heights and
// render at the sheet default. Nested <table> elements inside cells become
// separate tables with a nesting link, the same shape the HWPX reader
// produces.
package htmltab

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/tsawler/gridplan/model"
	"github.com/tsawler/gridplan/units"
)

// columnWidth is the synthetic per-column width for HTML tables, close to
// the spreadsheet default column width.
const columnWidth units.Length = 4800

// Reader provides access to the tables of an HTML document.
type Reader struct {
	doc   *html.Node
	title string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f, "")
}

// OpenReader parses HTML from an io.Reader. contentType, when known, helps
// decode legacy encodings (EUC-KR pages are common for this content); pass
// "" to sniff from the document itself.
func OpenReader(r io.Reader, contentType string) (*Reader, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	if t := findElement(doc, "title"); t != nil {
		reader.title = strings.TrimSpace(textContent(t))
	}
	return reader, nil
}

// Close releases resources associated with the Reader. HTML readers keep
// no file handles, so it never fails.
func (r *Reader) Close() error {
	return nil
}

// Title returns the document title, or "".
func (r *Reader) Title() string {
	return r.title
}

// Document extracts every table in document order. Top-level tables first,
// then tables nested in their cells, with links recording the nesting.
// Text outside any table becomes body paragraphs.
func (r *Reader) Document() (*model.Document, []model.Warning, error) {
	doc := &model.Document{BodyText: r.bodyText()}

	type workItem struct {
		node     *html.Node
		parent   int
		row, col int
	}
	var work []workItem
	for _, n := range topLevelTables(r.doc) {
		work = append(work, workItem{node: n, parent: -1})
	}

	for i := 0; i < len(work); i++ {
		item := work[i]
		tbl, children := parseTable(item.node)
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
			work = append(work, workItem{node: c.node, parent: i, row: c.row, col: c.col})
		}
	}

	return doc, nil, nil
}

// bodyText collects paragraphs outside any table: block boundaries and br
// elements split paragraphs, table subtrees are skipped entirely.
func (r *Reader) bodyText() []string {
	root := findElement(r.doc, "body")
	if root == nil {
		root = r.doc
	}

	var out []string
	for _, line := range strings.Split(textOutsideTables(root), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// topLevelTables finds table elements not contained in another table.
func topLevelTables(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			out = append(out, n)
			return // nested tables are found when the parent is parsed
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

type nestedRef struct {
	node     *html.Node
	row, col int
}

// parseTable converts one table element, using an occupancy grid so that
// rowspan and colspan place later cells in the right columns. Grid
// validation is the planner's job; ragged tables pass through as-is.
func parseTable(tableNode *html.Node) (*model.Table, []nestedRef) {
	t := &model.Table{ID: attr(tableNode, "id")}
	var nested []nestedRef

	occupied := make(map[[2]int]bool)
	row := 0
	for _, tr := range rowNodes(tableNode) {
		col := 0
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}
			for occupied[[2]int{row, col}] {
				col++
			}

			colSpan := intAttr(td, "colspan", 1)
			rowSpan := intAttr(td, "rowspan", 1)
			if colSpan < 1 {
				colSpan = 1
			}
			if rowSpan < 1 {
				rowSpan = 1
			}

			cell := model.Cell{
				Row: row, Col: col,
				RowSpan: rowSpan, ColSpan: colSpan,
			}
			for _, inner := range directTables(td) {
				nested = append(nested, nestedRef{node: inner, row: row, col: col})
			}
			if text := strings.TrimSpace(textOutsideTables(td)); text != "" {
				for _, line := range strings.Split(text, "\n") {
					if line = strings.TrimSpace(line); line != "" {
						cell.Paragraphs = append(cell.Paragraphs, model.Paragraph{Text: line})
					}
				}
			}

			for r := row; r < row+rowSpan; r++ {
				for c := col; c < col+colSpan; c++ {
					occupied[[2]int{r, c}] = true
				}
			}
			t.Cells = append(t.Cells, cell)

			if end := col + colSpan; end > t.ColCount {
				t.ColCount = end
			}
			if end := row + rowSpan; end > t.RowCount {
				t.RowCount = end
			}
			col += colSpan
		}
		row++
	}
	if row > t.RowCount {
		t.RowCount = row
	}
	t.Width = units.Length(t.ColCount) * columnWidth

	return t, nested
}

// rowNodes collects tr elements under a table, looking through thead,
// tbody, and tfoot in document order.
func rowNodes(tableNode *html.Node) []*html.Node {
	var rows []*html.Node
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			rows = append(rows, c)
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					rows = append(rows, tr)
				}
			}
		}
	}
	return rows
}

// directTables finds table elements under a cell that are not inside a
// deeper table.
func directTables(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "table" {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// textOutsideTables extracts the text of a node, skipping nested tables
// and turning br and block boundaries into newlines.
func textOutsideTables(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "table":
			return
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteString("\n")
		case n.Type == html.ElementNode && (n.Data == "p" || n.Data == "div"):
			if b.Len() > 0 {
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// textContent extracts all text under a node.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func intAttr(n *html.Node, key string, def int) int {
	s := attr(n, key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
