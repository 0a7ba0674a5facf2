package util

import "testing"

func TestMax(t *testing.T) {
	if Max(-2, 5) != 5 {
		t.Error("Invalid result")
	}
}

func TestMin(t *testing.T) {
	if Min(-2, 5) != -2 {
		t.Error("Invalid result")
	}
}

func TestConstrain(t *testing.T) {
	if Constrain(-3, -1, 3) != -1 {
		t.Error("Expected", -1)
	}
	if Constrain(2, -1, 3) != 2 {
		t.Error("Expected", 2)
	}
	if Constrain(5, -1, 3) != 3 {
		t.Error("Expected", 3)
	}
}

func TestStringWidth(t *testing.T) {
	if w := StringWidth("abc"); w != 3 {
		t.Error("Expected", 3, "got", w)
	}
	if w := StringWidth(""); w != 0 {
		t.Error("Expected", 0, "got", w)
	}
}

func TestTruncate(t *testing.T) {
	s, w := Truncate("hello", 3)
	if s != "hel" || w != 3 {
		t.Errorf("Truncate = (%q, %d)", s, w)
	}
	s, w = Truncate("hi", 10)
	if s != "hi" || w != 2 {
		t.Errorf("Truncate = (%q, %d)", s, w)
	}
	// Multi-byte single-column glyphs must be cut at column, not byte,
	// boundaries.
	s, w = Truncate("\U0001ce87\U0001ce87\U0001ce87", 2)
	if s != "\U0001ce87\U0001ce87" || w != 2 {
		t.Errorf("Truncate = (%q, %d)", s, w)
	}
	s, w = Truncate("abc", 0)
	if s != "" || w != 0 {
		t.Errorf("Truncate = (%q, %d)", s, w)
	}
}
