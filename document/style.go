package document

import (
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"docgen/common"
)

// Names of styles every registry produced by DefaultStyles contains.
const (
	StyleNormal        = "Normal"
	StyleTitle         = "Title"
	StyleSubtitle      = "Subtitle"
	StyleTitleInfo     = "TitleInfo"
	StyleHeading1      = "Heading1"
	StyleHeading2      = "Heading2"
	StyleHeading3      = "Heading3"
	StyleListBullet    = "ListBullet"
	StyleListNumber    = "ListNumber"
	StyleNoSpacing     = "NoSpacing"
	StyleCaption       = "Caption"
	StyleTableHeader   = "TableHeaderCell"
	StyleTableEmphasis = "TableEmphasisCell"
)

const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 3
)

// HeadingStyleName returns registry name of the style for heading level.
func HeadingStyleName(level int) string {
	return fmt.Sprintf("Heading%d", level)
}

// RGB is a 24 bit color.
type RGB [3]byte

// ParseRGB accepts "RRGGBB" with optional leading '#'.
func ParseRGB(s string) (RGB, error) {
	var c RGB
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return c, fmt.Errorf("color %q must have exactly 6 hex digits", s)
	}
	if _, err := hex.Decode(c[:], []byte(s)); err != nil {
		return c, fmt.Errorf("color %q is not valid hex: %w", s, err)
	}
	return c, nil
}

// String returns color in the form used by WordprocessingML: upper case RRGGBB.
func (c RGB) String() string {
	return strings.ToUpper(hex.EncodeToString(c[:]))
}

// StyleSpec is a complete set of formatting attributes. Sizes and spacing are
// in points.
type StyleSpec struct {
	Font        string
	Size        float64
	Color       RGB
	Weight      common.Weight
	Italic      bool
	Align       common.Alignment
	SpaceBefore float64
	SpaceAfter  float64
}

func (s StyleSpec) Bold() bool {
	return s.Weight == common.WeightBold
}

// RunStyle is a partial override applied on top of a resolved StyleSpec. Zero
// value changes nothing.
type RunStyle struct {
	Font   string
	Size   float64
	Color  *RGB
	Bold   *bool
	Italic *bool
}

// IsZero reports whether override has no effect.
func (o RunStyle) IsZero() bool {
	return o.Font == "" && o.Size == 0 && o.Color == nil && o.Bold == nil && o.Italic == nil
}

// Apply returns base with override attributes superimposed.
func (o RunStyle) Apply(base StyleSpec) StyleSpec {
	if o.Font != "" {
		base.Font = o.Font
	}
	if o.Size > 0 {
		base.Size = o.Size
	}
	if o.Color != nil {
		base.Color = *o.Color
	}
	if o.Bold != nil {
		base.Weight = common.WeightNormal
		if *o.Bold {
			base.Weight = common.WeightBold
		}
	}
	if o.Italic != nil {
		base.Italic = *o.Italic
	}
	return base
}

// Bold is a shortcut for the most frequent override.
func Bold() RunStyle {
	b := true
	return RunStyle{Bold: &b}
}

// StyleRegistry maps style names to specifications. Register overwrites
// silently, last write wins.
type StyleRegistry struct {
	styles map[string]StyleSpec
}

// NewStyleRegistry returns empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{styles: make(map[string]StyleSpec)}
}

// Register inserts or replaces named style and reports if a previous
// definition was replaced.
func (r *StyleRegistry) Register(name string, spec StyleSpec) (replaced bool) {
	_, replaced = r.styles[name]
	r.styles[name] = spec
	return replaced
}

// Resolve returns style by name. StyleSpec is a value, callers cannot change
// registry content through it.
func (r *StyleRegistry) Resolve(name string) (StyleSpec, error) {
	spec, ok := r.styles[name]
	if !ok {
		return StyleSpec{}, &UnknownStyleError{Name: name}
	}
	return spec, nil
}

// Has reports whether style is registered.
func (r *StyleRegistry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

func (r *StyleRegistry) Len() int {
	return len(r.styles)
}

// Names returns registered names in natural order (Heading2 before Heading10).
func (r *StyleRegistry) Names() []string {
	names := slices.Collect(maps.Keys(r.styles))
	sort.Sort(natural.StringSlice(names))
	return names
}

var (
	colorText    = RGB{0x00, 0x00, 0x00}
	colorHeading = RGB{0x1A, 0x1A, 0x2E}
	colorSub     = RGB{0x44, 0x44, 0x88}
)

// DefaultStyles returns registry populated with the base theme: body text,
// title page styles, three heading levels, list and table cell styles.
func DefaultStyles() *StyleRegistry {
	const font = "Calibri"

	normal := StyleSpec{Font: font, Size: 11, Color: colorText, SpaceAfter: 8}

	r := NewStyleRegistry()
	r.Register(StyleNormal, normal)

	title := normal
	title.Size, title.Weight, title.Color, title.Align = 28, common.WeightBold, colorHeading, common.AlignmentCenter
	r.Register(StyleTitle, title)

	subtitle := normal
	subtitle.Size, subtitle.Color, subtitle.Align = 16, colorSub, common.AlignmentCenter
	r.Register(StyleSubtitle, subtitle)

	info := normal
	info.Size, info.Align = 12, common.AlignmentCenter
	r.Register(StyleTitleInfo, info)

	for level, size := range map[int]float64{1: 16, 2: 13, 3: 12} {
		h := normal
		h.Size, h.Weight, h.Color = size, common.WeightBold, colorHeading
		h.SpaceBefore, h.SpaceAfter = float64(22-4*level), 4
		r.Register(HeadingStyleName(level), h)
	}

	list := normal
	list.SpaceAfter = 2
	r.Register(StyleListBullet, list)
	r.Register(StyleListNumber, list)

	nospacing := normal
	nospacing.SpaceAfter = 0
	r.Register(StyleNoSpacing, nospacing)

	caption := normal
	caption.Size, caption.Italic, caption.Align = 9, true, common.AlignmentCenter
	r.Register(StyleCaption, caption)

	header := normal
	header.Weight, header.Align, header.SpaceAfter = common.WeightBold, common.AlignmentCenter, 0
	r.Register(StyleTableHeader, header)
	r.Register(StyleTableEmphasis, header)

	return r
}
