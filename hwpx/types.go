package hwpx

import "encoding/xml"

// XML structures for HWPX section files. Element names match their OWPML
// local names; encoding/xml ignores the hp: namespace prefix, so the same
// structs parse prefixed and unprefixed documents.

// sectionXML represents a Contents/section*.xml file.
type sectionXML struct {
	XMLName    xml.Name  `xml:"sec"`
	Paragraphs []paraXML `xml:"p"`
}

// paraXML represents a paragraph (<hp:p>).
type paraXML struct {
	ID          string       `xml:"id,attr"`
	ParaPrIDRef string       `xml:"paraPrIDRef,attr"`
	StyleIDRef  string       `xml:"styleIDRef,attr"`
	Runs        []runXML     `xml:"run"`
	LineSegs    []lineSegXML `xml:"linesegarray>lineseg"`
}

// runXML represents a text run (<hp:run>). Tables ride along in runs,
// either directly or wrapped in a ctrl element.
type runXML struct {
	CharPrIDRef string    `xml:"charPrIDRef,attr"`
	Texts       []string  `xml:"t"`
	Tables      []tblXML  `xml:"tbl"`
	Ctrls       []ctrlXML `xml:"ctrl"`
	SecPr       *secPrXML `xml:"secPr"`
}

// ctrlXML represents a control object wrapper (<hp:ctrl>).
type ctrlXML struct {
	Tables []tblXML `xml:"tbl"`
}

// lineSegXML represents one laid-out line (<hp:lineseg>).
type lineSegXML struct {
	VertPos  int `xml:"vertpos,attr"`
	VertSize int `xml:"vertsize,attr"`
}

// tblXML represents a table (<hp:tbl>).
type tblXML struct {
	ID              string  `xml:"id,attr"`
	RowCnt          int     `xml:"rowCnt,attr"`
	ColCnt          int     `xml:"colCnt,attr"`
	BorderFillIDRef string  `xml:"borderFillIDRef,attr"`
	Size            *szXML  `xml:"sz"`
	Rows            []trXML `xml:"tr"`
}

// szXML represents an object size (<hp:sz>).
type szXML struct {
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

// trXML represents a table row (<hp:tr>).
type trXML struct {
	Cells []tcXML `xml:"tc"`
}

// tcXML represents a table cell (<hp:tc>).
type tcXML struct {
	BorderFillIDRef string      `xml:"borderFillIDRef,attr"`
	Addr            cellAddrXML `xml:"cellAddr"`
	Span            cellSpanXML `xml:"cellSpan"`
	Size            cellSzXML   `xml:"cellSz"`
	SubList         *subListXML `xml:"subList"`
}

// cellAddrXML represents a cell's grid address (<hp:cellAddr>).
type cellAddrXML struct {
	ColAddr int `xml:"colAddr,attr"`
	RowAddr int `xml:"rowAddr,attr"`
}

// cellSpanXML represents a cell's spans (<hp:cellSpan>).
type cellSpanXML struct {
	ColSpan int `xml:"colSpan,attr"`
	RowSpan int `xml:"rowSpan,attr"`
}

// cellSzXML represents a cell's size (<hp:cellSz>).
type cellSzXML struct {
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

// subListXML holds a cell's paragraphs (<hp:subList>).
type subListXML struct {
	Paragraphs []paraXML `xml:"p"`
}

// secPrXML represents section properties (<hp:secPr>).
type secPrXML struct {
	PagePr *pagePrXML `xml:"pagePr"`
}

// pagePrXML represents page properties (<hp:pagePr>).
type pagePrXML struct {
	Width     int        `xml:"width,attr"`
	Height    int        `xml:"height,attr"`
	Landscape string     `xml:"landscape,attr"`
	Margin    *marginXML `xml:"margin"`
}

// marginXML represents page margins (<hp:margin>).
type marginXML struct {
	Left   int `xml:"left,attr"`
	Right  int `xml:"right,attr"`
	Top    int `xml:"top,attr"`
	Bottom int `xml:"bottom,attr"`
	Header int `xml:"header,attr"`
	Footer int `xml:"footer,attr"`
	Gutter int `xml:"gutter,attr"`
}

// XML structures for Contents/header.xml.

// headerXML represents the document header with style definitions.
type headerXML struct {
	XMLName xml.Name   `xml:"head"`
	RefList refListXML `xml:"refList"`
}

type refListXML struct {
	FontFaces   fontFacesXML   `xml:"fontfaces"`
	BorderFills borderFillsXML `xml:"borderFills"`
	CharProps   charPropsXML   `xml:"charProperties"`
}

type fontFacesXML struct {
	FontFaces []fontFaceXML `xml:"fontface"`
}

type fontFaceXML struct {
	Lang  string    `xml:"lang,attr"`
	Fonts []fontXML `xml:"font"`
}

type fontXML struct {
	ID   string `xml:"id,attr"`
	Face string `xml:"face,attr"`
}

type borderFillsXML struct {
	BorderFills []borderFillXML `xml:"borderFill"`
}

type borderFillXML struct {
	ID     string        `xml:"id,attr"`
	Left   borderEdgeXML `xml:"leftBorder"`
	Right  borderEdgeXML `xml:"rightBorder"`
	Top    borderEdgeXML `xml:"topBorder"`
	Bottom borderEdgeXML `xml:"bottomBorder"`
	Fill   *fillBrushXML `xml:"fillBrush"`
}

type borderEdgeXML struct {
	Type  string `xml:"type,attr"`
	Width string `xml:"width,attr"`
	Color string `xml:"color,attr"`
}

type fillBrushXML struct {
	WinBrush *winBrushXML `xml:"winBrush"`
}

type winBrushXML struct {
	FaceColor string `xml:"faceColor,attr"`
}

type charPropsXML struct {
	CharProps []charPrXML `xml:"charPr"`
}

type charPrXML struct {
	ID        string        `xml:"id,attr"`
	Height    int           `xml:"height,attr"`
	TextColor string        `xml:"textColor,attr"`
	Bold      *struct{}     `xml:"bold"`
	Italic    *struct{}     `xml:"italic"`
	Underline *underlineXML `xml:"underline"`
	Strikeout *strikeoutXML `xml:"strikeout"`
	FontRef   *fontRefXML   `xml:"fontRef"`
}

type underlineXML struct {
	Type string `xml:"type,attr"`
}

type strikeoutXML struct {
	Type string `xml:"type,attr"`
}

type fontRefXML struct {
	Hangul string `xml:"hangul,attr"`
}
