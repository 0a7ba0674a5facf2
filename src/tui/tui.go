// Package tui owns the terminal session: alternate screen buffer, raw
// input mode, cursor visibility, and absolute-position writes. It talks
// ANSI/VT escape sequences directly and targets a single POSIX session;
// there is no terminfo layer.
package tui

// TermSize is the terminal extent in character cells.
type TermSize struct {
	Lines   int
	Columns int
}

// Renderer is the surface a frame is presented on.
type Renderer interface {
	Init() error
	Close()
	PrintAt(row int, col int, text string)
	Present(rows []string)
	Flush()
	GetChar() (byte, bool)
	Size() TermSize
}
