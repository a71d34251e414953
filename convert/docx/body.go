package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"docgen/common"
	"docgen/document"
)

const nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// Page margin in twips (one inch) on every side.
const pageMargin = 1440

type bodyWriter struct {
	styles *document.StyleRegistry
	// text width in twips, used to size table columns
	width int
}

func body(doc *document.Document, blocks []document.Block, size common.PageSize) (*etree.Document, error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("page size %d: %w", size, common.ErrInvalidPageSize)
	}
	pageW, pageH := size.Twips()

	out := newXML()
	root := out.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	parent := root.CreateElement("w:body")

	bw := &bodyWriter{styles: doc.Styles(), width: pageW - 2*pageMargin}
	for i, b := range blocks {
		switch b := b.(type) {
		case *document.Heading:
			bw.paragraph(parent, b.StyleName, b.Style, []document.Run{{Text: b.Text, Style: b.Style}})
		case *document.Paragraph:
			bw.paragraph(parent, b.StyleName, b.Style, b.Runs)
		case *document.Table:
			bw.table(parent, b)
		case *document.PageBreak:
			pageBreak(parent)
		default:
			return nil, fmt.Errorf("block %d: unsupported block type %T", i, b)
		}
	}

	sect := parent.CreateElement("w:sectPr")
	pgSz := sect.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", strconv.Itoa(pageW))
	pgSz.CreateAttr("w:h", strconv.Itoa(pageH))
	pgMar := sect.CreateElement("w:pgMar")
	for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		pgMar.CreateAttr(side, strconv.Itoa(pageMargin))
	}
	pgMar.CreateAttr("w:header", "720")
	pgMar.CreateAttr("w:footer", "720")
	pgMar.CreateAttr("w:gutter", "0")
	return out, nil
}

// paragraph writes properties which differ from the registered style only,
// the rest is inherited by word processor from styles part.
func (bw *bodyWriter) paragraph(parent *etree.Element, styleName string, spec document.StyleSpec, runs []document.Run) {
	p := parent.CreateElement("w:p")
	ppr := p.CreateElement("w:pPr")
	val(ppr, "w:pStyle", styleName)
	if registered, err := bw.styles.Resolve(styleName); err != nil || registered.Align != spec.Align {
		val(ppr, "w:jc", alignment(spec.Align))
	}
	for _, r := range runs {
		run(p, r, spec)
	}
}

// run splits text on '\n' and '\t' producing line breaks and tabs.
func run(p *etree.Element, r document.Run, paragraph document.StyleSpec) {
	wr := p.CreateElement("w:r")
	runProperties(wr, r.Style, &paragraph)

	var text strings.Builder
	flush := func() {
		if text.Len() == 0 {
			return
		}
		t := wr.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(text.String())
		text.Reset()
	}
	for _, c := range r.Text {
		switch c {
		case '\n':
			flush()
			wr.CreateElement("w:br")
		case '\t':
			flush()
			wr.CreateElement("w:tab")
		case '\r':
		default:
			text.WriteRune(c)
		}
	}
	flush()
}

func pageBreak(parent *etree.Element) {
	br := parent.CreateElement("w:p").CreateElement("w:r").CreateElement("w:br")
	br.CreateAttr("w:type", "page")
}

func (bw *bodyWriter) table(parent *etree.Element, t *document.Table) {
	tbl := parent.CreateElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	val(tblPr, "w:tblStyle", t.Layout.Style)
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", strconv.Itoa(bw.width))
	tblW.CreateAttr("w:type", "dxa")
	if t.Layout.Centered {
		val(tblPr, "w:jc", "center")
	}
	borders(tblPr, t.Layout.BorderColor)
	look := tblPr.CreateElement("w:tblLook")
	look.CreateAttr("w:firstRow", "1")
	look.CreateAttr("w:lastRow", "0")
	look.CreateAttr("w:firstColumn", "0")
	look.CreateAttr("w:lastColumn", "0")
	look.CreateAttr("w:noHBand", "0")
	look.CreateAttr("w:noVBand", "1")

	colW := bw.width / t.Columns()
	grid := tbl.CreateElement("w:tblGrid")
	for range t.Columns() {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", strconv.Itoa(colW))
	}

	header := tbl.CreateElement("w:tr")
	// repeat header row on every page
	header.CreateElement("w:trPr").CreateElement("w:tblHeader")
	for _, c := range t.Header {
		bw.cell(header, c, colW, &t.Layout.HeaderShade)
	}
	for _, row := range t.Rows {
		tr := tbl.CreateElement("w:tr")
		for _, c := range row {
			bw.cell(tr, c, colW, nil)
		}
	}
}

func (bw *bodyWriter) cell(tr *etree.Element, c document.Cell, width int, shade *document.RGB) {
	tc := tr.CreateElement("w:tc")
	tcPr := tc.CreateElement("w:tcPr")
	tcW := tcPr.CreateElement("w:tcW")
	tcW.CreateAttr("w:w", strconv.Itoa(width))
	tcW.CreateAttr("w:type", "dxa")
	if shade != nil {
		shd := tcPr.CreateElement("w:shd")
		shd.CreateAttr("w:val", "clear")
		shd.CreateAttr("w:color", "auto")
		shd.CreateAttr("w:fill", shade.String())
	}
	bw.paragraph(tc, c.StyleName, c.Style, []document.Run{{Text: c.Text, Style: c.Style}})
}
