package sextant

import "testing"

func TestEncode(t *testing.T) {
	cases := []struct {
		cells [6]bool
		want  uint8
	}{
		{[6]bool{false, false, false, false, false, false}, 0},
		{[6]bool{true, true, true, true, true, true}, 63},
		{[6]bool{true, true, true, false, true, true}, 59},
		{[6]bool{true, false, false, false, false, false}, 32},
		{[6]bool{false, false, false, false, false, true}, 1},
	}
	for _, c := range cases {
		if got := Encode(c.cells); got != c.want {
			t.Errorf("Encode(%v) = %d, want %d", c.cells, got, c.want)
		}
	}
}

func TestGlyphTable(t *testing.T) {
	seen := make(map[string]uint8)
	for i := uint8(0); i < 64; i++ {
		g := Glyph(i)
		if prev, dup := seen[g]; dup {
			t.Errorf("glyph %q shared by indices %d and %d", g, prev, i)
		}
		seen[g] = i
		if g != Glyph(i) {
			t.Errorf("Glyph(%d) is not stable", i)
		}
	}
	if Glyph(Blank) != " " {
		t.Errorf("Glyph(Blank) = %q, want a space", Glyph(Blank))
	}
	// The C-shaped block (11 10 11) is index 59.
	if Glyph(59) != "\U0001ce87" {
		t.Errorf("Glyph(59) = %q, want %q", Glyph(59), "\U0001ce87")
	}
}

func TestGlyphMasksIndex(t *testing.T) {
	if Glyph(64+5) != Glyph(5) {
		t.Error("indices above 63 should wrap into the table")
	}
}

func TestEncodeGlyph(t *testing.T) {
	c := [6]bool{true, true, true, false, true, true}
	if EncodeGlyph(c) != Glyph(59) {
		t.Errorf("EncodeGlyph(%v) = %q, want %q", c, EncodeGlyph(c), Glyph(59))
	}
}
