// Package content keeps document text as data. Model is an ordered list of
// items read from YAML and played into document assembler one by one.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"docgen/common"
)

//go:embed srd.yaml
var embedded []byte

// EmbeddedSource is reported as Model.Source when built-in content is used.
const EmbeddedSource = "<embedded>"

// Item kinds.
const (
	KindHeading     = "heading"
	KindParagraph   = "paragraph"
	KindBullets     = "bullets"
	KindNumbered    = "numbered"
	KindList        = "list"
	KindDefinitions = "definitions"
	KindTable       = "table"
	KindPageBreak   = "page_break"
	KindBlank       = "blank"
	KindTitlePage   = "title_page"
)

// Meta describes document as a whole, it is available to metadata templates.
type Meta struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Authors  []string `yaml:"authors"`
	Date     string   `yaml:"date"`
	Version  string   `yaml:"version"`
}

// Model is parsed content file.
type Model struct {
	Source string `yaml:"-"`
	Meta   Meta   `yaml:"meta"`
	Items  []Item `yaml:"items"`
}

// Run is a piece of paragraph text with formatting overrides.
type Run struct {
	Text   string  `yaml:"text"`
	Font   string  `yaml:"font"`
	Size   float64 `yaml:"size"`
	Color  string  `yaml:"color"`
	Bold   *bool   `yaml:"bold"`
	Italic *bool   `yaml:"italic"`
}

type HeadingItem struct {
	Level int    `yaml:"level"`
	Text  string `yaml:"text"`
}

// ParagraphItem is either plain text or a list of runs. When both are present
// text goes first.
type ParagraphItem struct {
	Style string            `yaml:"style"`
	Align *common.Alignment `yaml:"align"`
	Text  string            `yaml:"text"`
	Runs  []Run             `yaml:"runs"`
}

// ListItem is a sequence of paragraphs sharing the same list style.
type ListItem struct {
	Style string   `yaml:"style"`
	Items []string `yaml:"items"`
}

type Definition struct {
	Term string `yaml:"term"`
	Text string `yaml:"text"`
}

// TableItem rows may hold any scalars, empty cells are allowed. Unless
// compact, an empty paragraph follows the table.
type TableItem struct {
	Headers   []string `yaml:"headers"`
	Rows      [][]any  `yaml:"rows"`
	Emphasize []string `yaml:"emphasize"`
	Compact   bool     `yaml:"compact"`
}

// TitlePage produces centered title block followed by page break. Title and
// subtitle default to document meta.
type TitlePage struct {
	Padding  int      `yaml:"padding"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Info     []string `yaml:"info"`
	Team     []string `yaml:"team"`
}

// Item is a single-key mapping, the key selects kind of content. Exactly one
// of the payload fields matching Kind is set.
type Item struct {
	Kind string
	Line int

	Heading     *HeadingItem
	Paragraph   *ParagraphItem
	List        *ListItem
	Definitions []Definition
	Table       *TableItem
	TitlePage   *TitlePage
	Blank       int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: content item must be a mapping with a single key", node.Line)
	}
	key, value := node.Content[0].Value, node.Content[1]
	it.Line = node.Line

	var err error
	switch key {
	case "h1", "h2", "h3":
		it.Kind = KindHeading
		it.Heading = &HeadingItem{Level: int(key[1] - '0')}
		err = value.Decode(&it.Heading.Text)
	case KindHeading:
		it.Kind = KindHeading
		it.Heading = &HeadingItem{}
		err = decodeStrict(value, it.Heading)
	case KindParagraph:
		it.Kind = KindParagraph
		it.Paragraph = &ParagraphItem{}
		if value.Kind == yaml.ScalarNode {
			err = value.Decode(&it.Paragraph.Text)
		} else {
			err = decodeStrict(value, it.Paragraph)
		}
	case KindBullets, KindNumbered:
		it.Kind = key
		it.List = &ListItem{}
		err = value.Decode(&it.List.Items)
	case KindList:
		it.Kind = KindList
		it.List = &ListItem{}
		err = decodeStrict(value, it.List)
	case KindDefinitions:
		it.Kind = KindDefinitions
		err = decodeStrict(value, &it.Definitions)
	case KindTable:
		it.Kind = KindTable
		it.Table = &TableItem{}
		err = decodeStrict(value, it.Table)
	case KindPageBreak:
		it.Kind = KindPageBreak
	case KindBlank:
		it.Kind = KindBlank
		it.Blank = 1
		if value.ShortTag() != "!!null" {
			err = value.Decode(&it.Blank)
		}
	case KindTitlePage:
		it.Kind = KindTitlePage
		it.TitlePage = &TitlePage{}
		err = decodeStrict(value, it.TitlePage)
	default:
		return fmt.Errorf("line %d: unknown content item %q", node.Line, key)
	}
	if err != nil {
		return fmt.Errorf("line %d: bad %s item: %w", node.Line, key, err)
	}
	return nil
}

// decodeStrict decodes node rejecting unknown fields, Node.Decode does not.
func decodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// Load reads content from file, empty path selects embedded content.
func Load(path string) (*Model, error) {
	if path == "" {
		return Parse(embedded, EmbeddedSource)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read content file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes content model from YAML.
func Parse(data []byte, source string) (*Model, error) {
	m := &Model{Source: source}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("content %s is empty", source)
		}
		return nil, fmt.Errorf("unable to parse content %s: %w", source, err)
	}
	if len(m.Items) == 0 {
		return nil, fmt.Errorf("content %s has no items", source)
	}
	return m, nil
}
