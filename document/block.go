package document

import (
	"slices"
	"strings"

	"docgen/common"
)

// Block is one ordered unit of document content. Blocks are created by
// Assembler and are not changed after they were appended: readers only ever
// get copies.
type Block interface {
	Kind() common.BlockKind
	clone() Block
}

// Heading is a section title of level 1-3.
type Heading struct {
	Level     int
	Text      string
	StyleName string
	Style     StyleSpec
}

func (*Heading) Kind() common.BlockKind { return common.BlockKindHeading }

func (h *Heading) clone() Block {
	c := *h
	return &c
}

// Run is a span of text with resolved formatting. Text may contain '\n' (line
// break) and '\t' (tab).
type Run struct {
	Text  string
	Style StyleSpec
}

// Paragraph owns ordered runs. Paragraph without runs is an empty line.
type Paragraph struct {
	StyleName string
	Style     StyleSpec
	Runs      []Run
}

func (*Paragraph) Kind() common.BlockKind { return common.BlockKindParagraph }

func (p *Paragraph) clone() Block {
	c := *p
	c.Runs = slices.Clone(p.Runs)
	return &c
}

// Text returns concatenation of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Cell is a single table cell with one line of text.
type Cell struct {
	Text      string
	StyleName string
	Style     StyleSpec
}

// TableLayout describes table level presentation.
type TableLayout struct {
	// Name of the table style definition written along with the document.
	Style       string
	Centered    bool
	BorderColor RGB
	HeaderShade RGB
}

// Table always has len(Header) columns in every row.
type Table struct {
	Layout TableLayout
	Header []Cell
	Rows   [][]Cell
}

func (*Table) Kind() common.BlockKind { return common.BlockKindTable }

func (t *Table) clone() Block {
	c := *t
	c.Header = slices.Clone(t.Header)
	c.Rows = make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = slices.Clone(row)
	}
	return &c
}

func (t *Table) Columns() int {
	return len(t.Header)
}

// PageBreak forces following content onto a new page.
type PageBreak struct{}

func (*PageBreak) Kind() common.BlockKind { return common.BlockKindPageBreak }

func (*PageBreak) clone() Block { return &PageBreak{} }
