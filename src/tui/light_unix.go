//go:build !windows

package tui

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/sexel-dev/sexel/src/util"
)

func (r *LightRenderer) fd() int {
	return int(r.ttyin.Fd())
}

func (r *LightRenderer) initPlatform() (err error) {
	r.origState, err = term.MakeRaw(r.fd())
	return err
}

func (r *LightRenderer) restoreTerminal() {
	if r.origState != nil {
		term.Restore(r.fd(), r.origState)
		r.origState = nil
	}
	util.SetNonblock(r.ttyin, false)
}

func (r *LightRenderer) updateTerminalSize() {
	width, height, err := term.GetSize(r.fd())
	if err == nil {
		r.width = width
		r.height = height
	} else {
		r.width = getEnv("COLUMNS", defaultWidth)
		r.height = getEnv("LINES", defaultHeight)
	}
}

func (r *LightRenderer) getch() (byte, bool) {
	b := make([]byte, 1)
	util.SetNonblock(r.ttyin, true)
	n, err := util.Read(r.fd(), b)
	if err != nil || n < 1 {
		return 0, false
	}
	return b[0], true
}

// Size returns the current terminal extent, falling back to the size
// captured at Init when the ioctl fails.
func (r *LightRenderer) Size() TermSize {
	ws, err := unix.IoctlGetWinsize(r.fd(), unix.TIOCGWINSZ)
	if err != nil {
		return TermSize{r.height, r.width}
	}
	return TermSize{int(ws.Row), int(ws.Col)}
}
