// Package sexel implements sexel, a terminal pixel renderer. It keeps a
// monochrome bitmap, packs each 2x3 block of pixels into one Unicode
// sextant glyph, and paints the glyph grid in place on an ANSI terminal.
package sexel

import (
	"math/rand"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/sexel-dev/sexel/src/tui"
	"github.com/sexel-dev/sexel/src/util"
)

const ctrlC byte = 3

/*
caller -> SetPixel -> bitmap
bitmap -> Render   -> frame (glyph indices)
frame  -> Rows     -> tui.Present (escape sequences)
*/

// Run starts the demo loop: randomize the bitmap, render, present,
// sleep, until the frame budget runs out or the user quits.
func Run(opts *Options) (int, error) {
	renderer := tui.NewLightRenderer()
	if err := renderer.Init(); err != nil {
		return ExitError, err
	}
	util.AtExit(renderer.Close)
	defer util.RunAtExitFuncs()

	screen, err := NewScreen(0, opts.Width, opts.Height)
	if err != nil {
		return ExitError, err
	}
	defer screen.Destroy()

	if len(opts.Title) > 0 {
		cols := renderer.Size().Columns
		col := util.Max(1, (cols-runewidth.StringWidth(opts.Title))/2+1)
		renderer.PrintAt(1, col, opts.Title)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	interval := time.Second / time.Duration(opts.Fps)
	for frame := 0; opts.Frames == 0 || frame < opts.Frames; frame++ {
		for y := 0; y < screen.Height(); y++ {
			for x := 0; x < screen.Width(); x++ {
				if _, err := screen.SetPixel(x, y, rng.Intn(2) == 1); err != nil {
					return ExitError, err
				}
			}
		}
		screen.Render()
		renderer.Present(screen.Rows())

		// Raw mode disables ISIG, so ctrl-c arrives as a byte here
		// instead of a signal.
		if ch, ok := renderer.GetChar(); ok && (ch == 'q' || ch == ctrlC) {
			break
		}
		time.Sleep(interval)
	}
	return ExitOk, nil
}
