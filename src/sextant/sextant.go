// Package sextant maps 2x3 blocks of binary cells to Unicode sextant glyphs.
//
// A block is read top to bottom, left to right: top-left, top-right,
// mid-left, mid-right, bottom-left, bottom-right. Packed MSB-first, the
// block
//
//	11
//	10
//	11
//
// flattens to 111011 (59), whose glyph looks like a C.
package sextant

// Blank is the glyph index of the empty block.
const Blank uint8 = 0

// glyphs holds the 64 sextant characters from the Symbols for Legacy
// Computing Supplement block, indexed by the packed cell bits. Index 0 is
// a plain space.
var glyphs = [64]string{
	" ", "𜹰", "𜹠", "𜺀", "𜹘", "𜹸", "𜹨", "𜺈",
	"𜹔", "𜹴", "𜹤", "𜺄", "𜹜", "𜹼", "𜹬", "𜺌",
	"𜹒", "𜹲", "𜹢", "𜺂", "𜹚", "𜹺", "𜹪", "𜺊",
	"𜹖", "𜹶", "𜹦", "𜺆", "𜹞", "𜹾", "𜹮", "𜺎",
	"𜹑", "𜹱", "𜹡", "𜺁", "𜹙", "𜹹", "𜹩", "𜺉",
	"𜹕", "𜹵", "𜹥", "𜺅", "𜹝", "𜹽", "𜹭", "𜺍",
	"𜹓", "𜹳", "𜹣", "𜺃", "𜹛", "𜹻", "𜹫", "𜺋",
	"𜹗", "𜹷", "𜹧", "𜺇", "𜹟", "𜹿", "𜹯", "𜺏",
}

// Encode packs six cells into a glyph index in [0, 63]. cells[0] (top-left)
// becomes bit 5, cells[5] (bottom-right) bit 0.
func Encode(cells [6]bool) uint8 {
	var index uint8
	for _, cell := range cells {
		index <<= 1
		if cell {
			index |= 1
		}
	}
	return index
}

// Glyph returns the display string for a glyph index. Indices are masked
// to six bits so the lookup cannot go out of range.
func Glyph(index uint8) string {
	return glyphs[index&0x3f]
}

// EncodeGlyph returns the display string for six cells.
func EncodeGlyph(cells [6]bool) string {
	return glyphs[Encode(cells)]
}
