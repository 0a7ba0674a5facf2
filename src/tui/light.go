package tui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/sexel-dev/sexel/src/util"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Frames are drawn two lines down and two columns in, leaving the
	// top line free for a title.
	originRow = 2
	originCol = 2
)

// LightRenderer queues escape sequences and text, then writes them to
// the terminal in one flush per frame. Repeated frames overwrite in
// place; nothing is cleared or scrolled between them.
type LightRenderer struct {
	ttyin     *os.File
	out       io.Writer
	origState *term.State
	queued    string
	width     int
	height    int
	open      bool
}

// NewLightRenderer returns a renderer on the process's stdin/stdout.
func NewLightRenderer() *LightRenderer {
	return &LightRenderer{ttyin: os.Stdin, out: os.Stdout}
}

func (r *LightRenderer) queue(str string) {
	r.queued += str
}

func (r *LightRenderer) csi(code string) {
	r.queue("\x1b[" + code)
}

// Flush drains the queued output to the terminal.
func (r *LightRenderer) Flush() {
	if len(r.queued) > 0 {
		fmt.Fprint(r.out, r.queued)
		r.queued = ""
	}
}

func getEnv(name string, defaultValue int) int {
	env := os.Getenv(name)
	if len(env) == 0 {
		return defaultValue
	}
	return atoi(env, defaultValue)
}

func atoi(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

// Init enters the alternate screen buffer, switches the terminal to raw
// mode (canonical processing and echo off, non-blocking reads), and
// hides the cursor. Every successful Init must be paired with Close.
func (r *LightRenderer) Init() error {
	if out, ok := r.out.(*os.File); ok && !util.IsTty(out) {
		return errors.New("output is not a terminal")
	}
	if err := r.initPlatform(); err != nil {
		return errors.Wrap(err, "cannot enter raw mode")
	}
	r.updateTerminalSize()
	r.csi("?1049h")
	r.csi("?25l")
	r.Flush()
	r.open = true
	return nil
}

// Close restores the previous terminal state: raw mode off, cursor
// shown, normal screen buffer back. Idempotent, so it is safe as an
// exit hook regardless of how far Init got.
func (r *LightRenderer) Close() {
	if !r.open {
		return
	}
	r.open = false
	r.restoreTerminal()
	r.csi("?25h")
	r.csi("?1049l")
	r.Flush()
}

// PrintAt queues text at a 1-based row/column position. The text is
// truncated to the remaining display columns on that row; sextant glyphs
// are multi-byte but single-column, so the width check must measure
// columns, not bytes.
func (r *LightRenderer) PrintAt(row int, col int, text string) {
	limit := util.Max(0, r.width-col+1)
	if util.StringWidth(text) > limit {
		text, _ = util.Truncate(text, limit)
	}
	r.csi(strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
	r.queue(text)
}

// Present writes one frame: each glyph row at its fixed position, then
// a single flush.
func (r *LightRenderer) Present(rows []string) {
	for i, row := range rows {
		r.PrintAt(i+originRow, originCol, row)
	}
	r.Flush()
}

// GetChar performs a non-blocking single-byte read from the terminal.
// ok is false when no input is pending. Exposed for a future input
// component; the render pipeline itself never reads.
func (r *LightRenderer) GetChar() (byte, bool) {
	return r.getch()
}
