// Package util provides small helpers shared across the renderer.
package util

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"
)

// StringWidth returns the display width of a string.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate returns the longest prefix of the input that fits in limit
// display columns, along with its width.
func Truncate(input string, limit int) (string, int) {
	width := 0
	gr := uniseg.NewGraphemes(input)
	end := 0
	for gr.Next() {
		w := StringWidth(gr.Str())
		if width+w > limit {
			break
		}
		width += w
		_, end = gr.Positions()
	}
	return input[:end], width
}

// Max returns the largest integer
func Max(first int, second int) int {
	if first >= second {
		return first
	}
	return second
}

// Min returns the smallest integer
func Min(first int, second int) int {
	if first <= second {
		return first
	}
	return second
}

// Constrain limits the given integer with the upper and lower bounds
func Constrain(val int, min int, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// IsTty returns true if the file is a terminal
func IsTty(file *os.File) bool {
	return isatty.IsTerminal(file.Fd())
}
