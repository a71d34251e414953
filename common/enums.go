// Package common holds enums shared by configuration and the document model.
package common

//go:generate go tool go-enum --marshal --names --values

// Horizontal paragraph alignment. "both" is justified text.
// ENUM(left, center, right, both)
type Alignment int

// Font weight.
// ENUM(normal, bold)
type Weight int

// Kind of content block in the document sequence.
// ENUM(heading, paragraph, table, page-break)
type BlockKind int

// Page geometry of the produced document.
// ENUM(letter, a4)
type PageSize int

// Twips returns page width and height in twentieths of a point.
func (p PageSize) Twips() (width, height int) {
	switch p {
	case PageSizeA4:
		return 11906, 16838
	case PageSizeLetter:
		return 12240, 15840
	default:
		// this should never happen
		panic("unsupported page size requested")
	}
}
