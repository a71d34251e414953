package content

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"docgen/document"
)

// Populate plays every model item into assembler in order. It stops at the
// first failure, blocks added before it stay in the document.
func Populate(asm *document.Assembler, m *Model, log *zap.Logger) error {
	for i, it := range m.Items {
		if err := populateItem(asm, m, &it); err != nil {
			return fmt.Errorf("content item %d (%s, line %d): %w", i+1, it.Kind, it.Line, err)
		}
	}
	log.Debug("Content populated",
		zap.String("source", m.Source),
		zap.Int("items", len(m.Items)),
		zap.Int("blocks", asm.Document().Len()))
	return nil
}

func populateItem(asm *document.Assembler, m *Model, it *Item) error {
	switch it.Kind {
	case KindHeading:
		return asm.AddHeading(it.Heading.Level, it.Heading.Text)
	case KindParagraph:
		return paragraph(asm, it.Paragraph)
	case KindBullets:
		return list(asm, document.StyleListBullet, it.List.Items, false)
	case KindNumbered:
		return list(asm, document.StyleNormal, it.List.Items, true)
	case KindList:
		style := it.List.Style
		if style == "" {
			style = document.StyleListBullet
		}
		return list(asm, style, it.List.Items, false)
	case KindDefinitions:
		for _, d := range it.Definitions {
			runs := []document.TextRun{document.Styled(d.Term+": ", document.Bold()), document.Plain(d.Text)}
			if err := asm.AddParagraph(runs); err != nil {
				return err
			}
		}
		return nil
	case KindTable:
		return table(asm, it.Table)
	case KindPageBreak:
		return asm.AddPageBreak()
	case KindBlank:
		return blank(asm, it.Blank)
	case KindTitlePage:
		return titlePage(asm, m, it.TitlePage)
	default:
		return fmt.Errorf("unsupported content item kind %q", it.Kind)
	}
}

func paragraph(asm *document.Assembler, p *ParagraphItem) error {
	var opts []document.ParagraphOption
	if p.Style != "" {
		opts = append(opts, document.WithStyle(p.Style))
	}
	if p.Align != nil {
		opts = append(opts, document.WithAlignment(*p.Align))
	}

	runs := make([]document.TextRun, 0, len(p.Runs)+1)
	if p.Text != "" {
		runs = append(runs, document.Plain(p.Text))
	}
	for i, r := range p.Runs {
		style, err := r.style()
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		runs = append(runs, document.Styled(r.Text, style))
	}
	return asm.AddParagraph(runs, opts...)
}

func (r Run) style() (document.RunStyle, error) {
	style := document.RunStyle{Font: r.Font, Size: r.Size, Bold: r.Bold, Italic: r.Italic}
	if r.Color != "" {
		c, err := document.ParseRGB(r.Color)
		if err != nil {
			return style, err
		}
		style.Color = &c
	}
	return style, nil
}

// list adds one paragraph per entry, numbered lists carry numbers in text.
func list(asm *document.Assembler, style string, items []string, numbered bool) error {
	for i, text := range items {
		if numbered {
			text = fmt.Sprintf("%d. %s", i+1, text)
		}
		if err := asm.AddText(text, document.WithStyle(style)); err != nil {
			return err
		}
	}
	return nil
}

func table(asm *document.Assembler, t *TableItem) error {
	var opts []document.TableOption
	if len(t.Emphasize) > 0 {
		opts = append(opts, document.Emphasize(t.Emphasize...))
	}
	if err := asm.AddTable(t.Headers, t.Rows, opts...); err != nil {
		return err
	}
	if t.Compact {
		return nil
	}
	return blank(asm, 1)
}

func blank(asm *document.Assembler, n int) error {
	for range n {
		if err := asm.AddParagraph(nil); err != nil {
			return err
		}
	}
	return nil
}

func titlePage(asm *document.Assembler, m *Model, tp *TitlePage) error {
	title, subtitle := tp.Title, tp.Subtitle
	if title == "" {
		title = m.Meta.Title
	}
	if subtitle == "" {
		subtitle = m.Meta.Subtitle
	}

	if err := blank(asm, tp.Padding); err != nil {
		return err
	}
	if err := asm.AddText(title, document.WithStyle(document.StyleTitle)); err != nil {
		return err
	}
	if subtitle != "" {
		if err := asm.AddText(subtitle, document.WithStyle(document.StyleSubtitle)); err != nil {
			return err
		}
	}
	if len(tp.Info) > 0 {
		if err := blank(asm, 1); err != nil {
			return err
		}
		if err := asm.AddText(strings.Join(tp.Info, "\n"), document.WithStyle(document.StyleTitleInfo)); err != nil {
			return err
		}
	}
	if len(tp.Team) > 0 {
		if err := blank(asm, 1); err != nil {
			return err
		}
		team := document.Styled(strings.Join(tp.Team, "\n"), document.RunStyle{Size: 11})
		if err := asm.AddParagraph([]document.TextRun{team}, document.WithStyle(document.StyleTitleInfo)); err != nil {
			return err
		}
	}
	return asm.AddPageBreak()
}
