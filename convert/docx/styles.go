package docx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"docgen/common"
	"docgen/document"
)

const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Numbering instances defined in numbering.xml.
const (
	numBullet  = 1
	numDecimal = 2
)

func halfPoints(pt float64) string {
	return strconv.Itoa(int(math.Round(pt * 2)))
}

func twips(pt float64) string {
	return strconv.Itoa(int(math.Round(pt * 20)))
}

func val(el *etree.Element, tag, v string) *etree.Element {
	child := el.CreateElement(tag)
	child.CreateAttr("w:val", v)
	return child
}

// displayNames are names word processors recognize as built-in styles.
var displayNames = map[string]string{
	document.StyleNormal:     "Normal",
	document.StyleTitle:      "Title",
	document.StyleSubtitle:   "Subtitle",
	document.StyleHeading1:   "heading 1",
	document.StyleHeading2:   "heading 2",
	document.StyleHeading3:   "heading 3",
	document.StyleListBullet: "List Bullet",
	document.StyleListNumber: "List Number",
	document.StyleNoSpacing:  "No Spacing",
	document.StyleCaption:    "caption",
}

func displayName(id string) string {
	if n, ok := displayNames[id]; ok {
		return n
	}
	return id
}

// headingLevel returns outline level for heading style names, 0 otherwise.
func headingLevel(id string) int {
	for level := document.MinHeadingLevel; level <= document.MaxHeadingLevel; level++ {
		if id == document.HeadingStyleName(level) {
			return level
		}
	}
	return 0
}

// runProperties writes formatting of spec which differs from base. With nil
// base everything is written.
func runProperties(parent *etree.Element, spec document.StyleSpec, base *document.StyleSpec) {
	if base != nil && *base == spec {
		return
	}
	rpr := etree.NewElement("w:rPr")
	if base == nil || base.Font != spec.Font {
		fonts := rpr.CreateElement("w:rFonts")
		for _, a := range []string{"w:ascii", "w:hAnsi", "w:cs", "w:eastAsia"} {
			fonts.CreateAttr(a, spec.Font)
		}
	}
	if base == nil || base.Bold() != spec.Bold() {
		b := rpr.CreateElement("w:b")
		if !spec.Bold() {
			b.CreateAttr("w:val", "0")
		}
	}
	if base == nil || base.Italic != spec.Italic {
		i := rpr.CreateElement("w:i")
		if !spec.Italic {
			i.CreateAttr("w:val", "0")
		}
	}
	if base == nil || base.Color != spec.Color {
		val(rpr, "w:color", spec.Color.String())
	}
	if base == nil || base.Size != spec.Size {
		val(rpr, "w:sz", halfPoints(spec.Size))
		val(rpr, "w:szCs", halfPoints(spec.Size))
	}
	if len(rpr.ChildElements()) > 0 {
		parent.AddChild(rpr)
	}
}

func spacing(ppr *etree.Element, spec document.StyleSpec) {
	sp := ppr.CreateElement("w:spacing")
	sp.CreateAttr("w:before", twips(spec.SpaceBefore))
	sp.CreateAttr("w:after", twips(spec.SpaceAfter))
}

func alignment(a common.Alignment) string {
	if !a.IsValid() {
		return common.AlignmentLeft.String()
	}
	return a.String()
}

// styles describes every registered paragraph style and table styles used by
// the blocks.
func styles(reg *document.StyleRegistry, lang string, blocks []document.Block) (*etree.Document, error) {
	normal, err := reg.Resolve(document.StyleNormal)
	if err != nil {
		return nil, fmt.Errorf("base style is required: %w", err)
	}

	doc := newXML()
	root := doc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", nsW)

	defaults := root.CreateElement("w:docDefaults")
	rpr := defaults.CreateElement("w:rPrDefault")
	runProperties(rpr, normal, nil)
	if lang != "" {
		if props := rpr.SelectElement("w:rPr"); props != nil {
			val(props, "w:lang", lang)
		}
	}
	spacing(defaults.CreateElement("w:pPrDefault").CreateElement("w:pPr"), normal)

	for _, id := range reg.Names() {
		spec, _ := reg.Resolve(id)
		paragraphStyle(root, id, spec, normal)
	}

	seen := make(map[string]bool)
	for _, b := range blocks {
		if t, ok := b.(*document.Table); ok && !seen[t.Layout.Style] {
			seen[t.Layout.Style] = true
			tableStyle(root, t.Layout)
		}
	}
	return doc, nil
}

func paragraphStyle(root *etree.Element, id string, spec, normal document.StyleSpec) {
	style := root.CreateElement("w:style")
	style.CreateAttr("w:type", "paragraph")
	if id == document.StyleNormal {
		style.CreateAttr("w:default", "1")
	}
	style.CreateAttr("w:styleId", id)
	val(style, "w:name", displayName(id))

	level := headingLevel(id)
	var base *document.StyleSpec
	if id != document.StyleNormal {
		val(style, "w:basedOn", document.StyleNormal)
		val(style, "w:next", document.StyleNormal)
		base = &normal
	}
	style.CreateElement("w:qFormat")

	ppr := style.CreateElement("w:pPr")
	if level > 0 {
		ppr.CreateElement("w:keepNext")
	}
	switch id {
	case document.StyleListBullet:
		listNumbering(ppr, numBullet)
	case document.StyleListNumber:
		listNumbering(ppr, numDecimal)
	}
	spacing(ppr, spec)
	val(ppr, "w:jc", alignment(spec.Align))
	if level > 0 {
		val(ppr, "w:outlineLvl", strconv.Itoa(level-1))
	}

	runProperties(style, spec, base)
}

func listNumbering(ppr *etree.Element, numID int) {
	pr := ppr.CreateElement("w:numPr")
	val(pr, "w:ilvl", "0")
	val(pr, "w:numId", strconv.Itoa(numID))
}

// tableStyleName turns identifier like LightGridAccent1 into "Light Grid
// Accent 1".
func tableStyleName(id string) string {
	var b strings.Builder
	for i, r := range id {
		if i > 0 && (r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' && !(id[i-1] >= '0' && id[i-1] <= '9')) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tableStyle adds definition of the table style referenced by tables.
func tableStyle(root *etree.Element, layout document.TableLayout) {
	style := root.CreateElement("w:style")
	style.CreateAttr("w:type", "table")
	style.CreateAttr("w:styleId", layout.Style)
	val(style, "w:name", tableStyleName(layout.Style))
	tblPr := style.CreateElement("w:tblPr")
	borders(tblPr, layout.BorderColor)
}

func borders(tblPr *etree.Element, color document.RGB) {
	b := tblPr.CreateElement("w:tblBorders")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		edge := b.CreateElement(side)
		edge.CreateAttr("w:val", "single")
		edge.CreateAttr("w:sz", "8")
		edge.CreateAttr("w:space", "0")
		edge.CreateAttr("w:color", color.String())
	}
}

func numbering() *etree.Document {
	doc := newXML()
	root := doc.CreateElement("w:numbering")
	root.CreateAttr("xmlns:w", nsW)

	for i, def := range []struct{ format, text string }{
		{"bullet", "•"},
		{"decimal", "%1."},
	} {
		abs := root.CreateElement("w:abstractNum")
		abs.CreateAttr("w:abstractNumId", strconv.Itoa(i))
		val(abs, "w:multiLevelType", "singleLevel")
		lvl := abs.CreateElement("w:lvl")
		lvl.CreateAttr("w:ilvl", "0")
		val(lvl, "w:start", "1")
		val(lvl, "w:numFmt", def.format)
		val(lvl, "w:lvlText", def.text)
		val(lvl, "w:lvlJc", "left")
		ind := lvl.CreateElement("w:pPr").CreateElement("w:ind")
		ind.CreateAttr("w:left", "720")
		ind.CreateAttr("w:hanging", "360")
	}
	for i, numID := range []int{numBullet, numDecimal} {
		num := root.CreateElement("w:num")
		num.CreateAttr("w:numId", strconv.Itoa(numID))
		val(num, "w:abstractNumId", strconv.Itoa(i))
	}
	return doc
}
