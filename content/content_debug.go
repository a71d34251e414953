package content

import (
	"strings"

	"docgen/utils/debug"
)

// String returns readable tree of the model. It exists solely for manual
// inspection during debugging.
func (m *Model) String() string {
	if m == nil {
		return "<nil Model>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Content %s (%d items)", m.Source, len(m.Items))
	tw.Attr(1, "Title", m.Meta.Title)
	tw.Attr(1, "Subtitle", m.Meta.Subtitle)
	tw.Attr(1, "Authors", strings.Join(m.Meta.Authors, ", "))
	tw.Attr(1, "Date", m.Meta.Date)
	tw.Attr(1, "Version", m.Meta.Version)

	for i, it := range m.Items {
		tw.Line(1, "[%d] %s (line %d)", i+1, it.Kind, it.Line)
		switch it.Kind {
		case KindHeading:
			tw.Line(2, "level %d: %q", it.Heading.Level, it.Heading.Text)
		case KindParagraph:
			if it.Paragraph.Style != "" {
				tw.Attr(2, "style", it.Paragraph.Style)
			}
			if it.Paragraph.Text != "" {
				tw.Attr(2, "text", it.Paragraph.Text)
			}
			for _, r := range it.Paragraph.Runs {
				tw.Attr(2, "run", r.Text)
			}
		case KindBullets, KindNumbered, KindList:
			if it.List.Style != "" {
				tw.Attr(2, "style", it.List.Style)
			}
			for _, s := range it.List.Items {
				tw.Attr(2, "item", s)
			}
		case KindDefinitions:
			for _, d := range it.Definitions {
				tw.Attr(2, d.Term, d.Text)
			}
		case KindTable:
			tw.Line(2, "columns=%d rows=%d compact=%t", len(it.Table.Headers), len(it.Table.Rows), it.Table.Compact)
			tw.Attr(2, "headers", strings.Join(it.Table.Headers, " | "))
		case KindBlank:
			tw.Line(2, "count %d", it.Blank)
		case KindTitlePage:
			tw.Line(2, "padding %d", it.TitlePage.Padding)
			for _, s := range it.TitlePage.Info {
				tw.Attr(2, "info", s)
			}
			for _, s := range it.TitlePage.Team {
				tw.Attr(2, "team", s)
			}
		}
	}
	return tw.String()
}
