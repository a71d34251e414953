package document

import (
	"fmt"
	"slices"
)

// Default table layout, the same look for every table in the document.
const DefaultTableStyle = "LightGridAccent1"

var (
	defaultTableBorder = RGB{0x7B, 0xA0, 0xCD}
	defaultHeaderShade = RGB{0xD3, 0xDF, 0xEE}
)

// TableOptions configures TableBuilder.
type TableOptions struct {
	Style    string
	Centered bool
}

// TableOption adjusts construction of a single table.
type TableOption func(*tableSettings)

type tableSettings struct {
	emphasize []string
}

// Emphasize marks body cells with exactly matching text with the table
// emphasis style (for example "X" markers in a responsibility matrix).
func Emphasize(values ...string) TableOption {
	return func(s *tableSettings) {
		s.emphasize = append(s.emphasize, values...)
	}
}

// TableBuilder produces table blocks. It never appends anything to the
// document, placement is caller's business.
type TableBuilder struct {
	styles *StyleRegistry
	layout TableLayout
}

func NewTableBuilder(styles *StyleRegistry, opts TableOptions) *TableBuilder {
	layout := TableLayout{
		Style:       opts.Style,
		Centered:    opts.Centered,
		BorderColor: defaultTableBorder,
		HeaderShade: defaultHeaderShade,
	}
	if layout.Style == "" {
		layout.Style = DefaultTableStyle
	}
	return &TableBuilder{styles: styles, layout: layout}
}

// Build validates shape of the input and returns table block. Header cells
// get table header style, body cells get body text style. Values of any type
// are converted to text, nil becomes empty cell.
func (tb *TableBuilder) Build(headers []string, rows [][]any, opts ...TableOption) (*Table, error) {
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, &ColumnCountMismatchError{Row: i, Got: len(row), Want: len(headers)}
		}
	}

	var settings tableSettings
	for _, setOpt := range opts {
		setOpt(&settings)
	}

	headerStyle, err := tb.styles.Resolve(StyleTableHeader)
	if err != nil {
		return nil, err
	}
	bodyStyle, err := tb.styles.Resolve(StyleNormal)
	if err != nil {
		return nil, err
	}
	var emphasisStyle StyleSpec
	if len(settings.emphasize) > 0 {
		if emphasisStyle, err = tb.styles.Resolve(StyleTableEmphasis); err != nil {
			return nil, err
		}
	}

	t := &Table{
		Layout: tb.layout,
		Header: make([]Cell, 0, len(headers)),
		Rows:   make([][]Cell, 0, len(rows)),
	}
	for _, h := range headers {
		t.Header = append(t.Header, Cell{Text: h, StyleName: StyleTableHeader, Style: headerStyle})
	}
	for _, row := range rows {
		cells := make([]Cell, 0, len(row))
		for _, v := range row {
			text := cellText(v)
			if slices.Contains(settings.emphasize, text) {
				cells = append(cells, Cell{Text: text, StyleName: StyleTableEmphasis, Style: emphasisStyle})
				continue
			}
			cells = append(cells, Cell{Text: text, StyleName: StyleNormal, Style: bodyStyle})
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
