package document

import (
	"docgen/utils/debug"
)

// String returns readable dump of the registry, used in debug reports.
func (r *StyleRegistry) String() string {
	if r == nil {
		return "<nil StyleRegistry>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "StyleRegistry (%d styles)", r.Len())
	for _, name := range r.Names() {
		tw.Line(1, "%s: %s", name, r.styles[name])
	}
	return tw.String()
}

func (s StyleSpec) String() string {
	tw := debug.NewTreeWriter()
	tw.Inline("font=%q size=%g color=%s weight=%s align=%s", s.Font, s.Size, s.Color, s.Weight, s.Align)
	if s.Italic {
		tw.Inline(" italic")
	}
	if s.SpaceBefore != 0 || s.SpaceAfter != 0 {
		tw.Inline(" space=%g/%g", s.SpaceBefore, s.SpaceAfter)
	}
	return tw.String()
}

// String returns readable tree of the whole document. It exists solely for
// manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Document (%d blocks, finalized=%t)", d.Len(), d.finalized)
	tw.Attr(1, "Title", d.Meta.Title)
	tw.Attr(1, "Creator", d.Meta.Creator)
	tw.Attr(1, "Language", d.Meta.Language)
	tw.Attr(1, "Identifier", d.Meta.Identifier)
	for i, b := range d.seq.all() {
		switch b := b.(type) {
		case *Heading:
			tw.Line(1, "[%d] heading level=%d style=%s", i, b.Level, b.StyleName)
			tw.Attr(2, "text", b.Text)
		case *Paragraph:
			tw.Line(1, "[%d] paragraph style=%s align=%s runs=%d", i, b.StyleName, b.Style.Align, len(b.Runs))
			for _, r := range b.Runs {
				tw.Attr(2, "run", r.Text)
			}
		case *Table:
			tw.Line(1, "[%d] table style=%s columns=%d rows=%d", i, b.Layout.Style, b.Columns(), len(b.Rows))
			for _, c := range b.Header {
				tw.Attr(2, "header", c.Text)
			}
		case *PageBreak:
			tw.Line(1, "[%d] page break", i)
		}
	}
	return tw.String()
}
