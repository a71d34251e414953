package document

import (
	"fmt"
	"time"

	"docgen/common"
)

// Metadata goes into document properties, it does not affect content.
type Metadata struct {
	Title       string
	Subject     string
	Creator     string
	Description string
	Language    string
	Identifier  string
	Created     time.Time
}

// Document is the root of the content tree: registry used to style blocks and
// the blocks themselves.
type Document struct {
	Meta Metadata

	styles    *StyleRegistry
	seq       Sequence
	finalized bool
}

// Styles returns registry document blocks were resolved against.
func (d *Document) Styles() *StyleRegistry {
	return d.styles
}

func (d *Document) Len() int {
	return d.seq.Len()
}

// Blocks returns snapshot of current content.
func (d *Document) Blocks() []Block {
	return d.seq.Snapshot()
}

// Kinds lists kinds of all blocks in document order.
func (d *Document) Kinds() []common.BlockKind {
	return d.seq.Kinds()
}

// Finalize closes document for changes and returns its content. It is safe to
// call more than once.
func (d *Document) Finalize() []Block {
	d.finalized = true
	return d.seq.Snapshot()
}

func (d *Document) Finalized() bool {
	return d.finalized
}

// TextRun is a piece of paragraph text with optional formatting override.
type TextRun struct {
	Text  string
	Style RunStyle
}

// Plain returns run without any overrides.
func Plain(text string) TextRun {
	return TextRun{Text: text}
}

// Styled returns run with formatting override.
func Styled(text string, style RunStyle) TextRun {
	return TextRun{Text: text, Style: style}
}

// ParagraphOption adjusts a single paragraph.
type ParagraphOption func(*paragraphSettings)

type paragraphSettings struct {
	style string
	align *common.Alignment
}

// WithStyle selects paragraph style other than body text.
func WithStyle(name string) ParagraphOption {
	return func(s *paragraphSettings) {
		s.style = name
	}
}

// WithAlignment overrides horizontal alignment of the paragraph style.
func WithAlignment(align common.Alignment) ParagraphOption {
	return func(s *paragraphSettings) {
		s.align = &align
	}
}

// Assembler is the only way to put content into a Document. Each successful
// call appends exactly one block, a failed call appends nothing.
type Assembler struct {
	doc    *Document
	tables *TableBuilder
}

// NewAssembler returns assembler for a fresh empty document styled by the
// registry.
func NewAssembler(styles *StyleRegistry, opts TableOptions) *Assembler {
	return &Assembler{
		doc:    &Document{styles: styles},
		tables: NewTableBuilder(styles, opts),
	}
}

// Document returns document being assembled.
func (a *Assembler) Document() *Document {
	return a.doc
}

// AddHeading appends section heading of level 1-3.
func (a *Assembler) AddHeading(level int, text string) error {
	if err := a.check(common.BlockKindHeading); err != nil {
		return err
	}
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		return a.fail(common.BlockKindHeading, &InvalidHeadingLevelError{Level: level})
	}
	name := HeadingStyleName(level)
	spec, err := a.doc.styles.Resolve(name)
	if err != nil {
		return a.fail(common.BlockKindHeading, err)
	}
	a.doc.seq.Append(&Heading{Level: level, Text: text, StyleName: name, Style: spec})
	return nil
}

// AddParagraph appends paragraph built from runs. Each run starts from the
// paragraph style and applies its own override. No runs produce empty line.
func (a *Assembler) AddParagraph(runs []TextRun, opts ...ParagraphOption) error {
	if err := a.check(common.BlockKindParagraph); err != nil {
		return err
	}

	settings := paragraphSettings{style: StyleNormal}
	for _, setOpt := range opts {
		setOpt(&settings)
	}

	spec, err := a.doc.styles.Resolve(settings.style)
	if err != nil {
		return a.fail(common.BlockKindParagraph, err)
	}
	if settings.align != nil {
		spec.Align = *settings.align
	}

	p := &Paragraph{StyleName: settings.style, Style: spec, Runs: make([]Run, 0, len(runs))}
	for _, r := range runs {
		style := spec
		if !r.Style.IsZero() {
			style = r.Style.Apply(spec)
		}
		p.Runs = append(p.Runs, Run{Text: r.Text, Style: style})
	}
	a.doc.seq.Append(p)
	return nil
}

// AddText is AddParagraph with a single plain run.
func (a *Assembler) AddText(text string, opts ...ParagraphOption) error {
	return a.AddParagraph([]TextRun{Plain(text)}, opts...)
}

// AddTable builds table and appends it.
func (a *Assembler) AddTable(headers []string, rows [][]any, opts ...TableOption) error {
	if err := a.check(common.BlockKindTable); err != nil {
		return err
	}
	t, err := a.tables.Build(headers, rows, opts...)
	if err != nil {
		return a.fail(common.BlockKindTable, err)
	}
	a.doc.seq.Append(t)
	return nil
}

// AddPageBreak appends page break.
func (a *Assembler) AddPageBreak() error {
	if err := a.check(common.BlockKindPageBreak); err != nil {
		return err
	}
	a.doc.seq.Append(&PageBreak{})
	return nil
}

func (a *Assembler) check(kind common.BlockKind) error {
	if a.doc.Finalized() {
		return a.fail(kind, ErrDocumentFinalized)
	}
	return nil
}

// fail identifies the failed operation by position the block would have had.
func (a *Assembler) fail(kind common.BlockKind, err error) error {
	return fmt.Errorf("unable to add %s as block %d: %w", kind, a.doc.seq.Len()+1, err)
}
