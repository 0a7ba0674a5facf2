package sexel

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sexel-dev/sexel/src/sextant"
)

// Status describes the lifecycle state of a Screen.
type Status uint8

const (
	StatusUninitialized Status = iota
	StatusReady
	StatusError
)

const (
	// DefaultWidth and DefaultHeight size a screen when the caller does
	// not ask for specific dimensions.
	DefaultWidth  = 20
	DefaultHeight = 20

	// MaxDim is the largest extent in either dimension.
	MaxDim = 255

	cellWidth  = 2
	cellHeight = 3
)

var (
	// ErrAlloc is returned when the screen buffers cannot be allocated
	// for the requested dimensions.
	ErrAlloc = errors.New("cannot allocate screen buffers")

	// ErrNotReady is returned on pixel access before Init or after Destroy.
	ErrNotReady = errors.New("screen not ready")
)

// Screen owns a monochrome bitmap and the glyph frame derived from it.
// The bitmap is row-major, index = y*width + x. The frame holds one
// encoded sextant index per glyph cell and is only valid after Render.
type Screen struct {
	status Status
	width  uint8
	height uint8
	flags  uint8
	bitmap []bool
	frame  []uint8
}

// NewScreen allocates a screen with the given option flags and extents.
// Both dimensions must fit in [0, MaxDim]; zero is legal and yields a
// degenerate single-glyph frame.
func NewScreen(flags uint8, width int, height int) (*Screen, error) {
	s := &Screen{flags: flags}
	if err := s.Init(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Init allocates an all-false bitmap and an all-blank frame. Any previous
// content is discarded.
func (s *Screen) Init(width int, height int) error {
	if width < 0 || width > MaxDim || height < 0 || height > MaxDim {
		s.status = StatusError
		fmt.Fprintf(os.Stderr, "[E] cannot allocate %dx%d screen\n", width, height)
		return ErrAlloc
	}
	s.width = uint8(width)
	s.height = uint8(height)
	s.bitmap = make([]bool, width*height)
	gw, gh := s.GlyphSize()
	s.frame = make([]uint8, gw*gh)
	s.status = StatusReady
	return nil
}

// Resize drops both buffers and reallocates them for the new extents.
// Pixel data does not survive a resize.
func (s *Screen) Resize(width int, height int) error {
	s.bitmap = nil
	s.frame = nil
	return s.Init(width, height)
}

// Width returns the bitmap width in pixels.
func (s *Screen) Width() int {
	return int(s.width)
}

// Height returns the bitmap height in pixels.
func (s *Screen) Height() int {
	return int(s.height)
}

// Ready reports whether the screen can be drawn on.
func (s *Screen) Ready() bool {
	return s.status == StatusReady
}

// GlyphSize returns the frame extents in glyph cells. The +1 guarantees
// at least one cell per dimension and covers any remainder pixels with a
// partially filled edge glyph.
func (s *Screen) GlyphSize() (int, int) {
	return int(s.width)/cellWidth + 1, int(s.height)/cellHeight + 1
}

// Pixel returns the cell at (x, y). Out-of-range coordinates read as
// false so edge glyphs degrade to blank sub-cells instead of erroring.
func (s *Screen) Pixel(x int, y int) bool {
	if s.status != StatusReady {
		fmt.Fprintln(os.Stderr, "[E] pixel read on uninitialized screen")
		return false
	}
	if x < 0 || y < 0 || x >= int(s.width) || y >= int(s.height) {
		return false
	}
	return s.bitmap[y*int(s.width)+x]
}

// SetPixel sets the cell at (x, y) and reports whether it was written.
// Out-of-range coordinates are ignored without error; access before Init
// or after Destroy fails with ErrNotReady and leaves recovery to the
// caller.
func (s *Screen) SetPixel(x int, y int, value bool) (bool, error) {
	if s.status != StatusReady {
		fmt.Fprintln(os.Stderr, "[E] pixel write on uninitialized screen")
		return false, ErrNotReady
	}
	if x < 0 || y < 0 || x >= int(s.width) || y >= int(s.height) {
		return false, nil
	}
	s.bitmap[y*int(s.width)+x] = value
	return true, nil
}

// Clear resets every bitmap cell to false without reallocating.
func (s *Screen) Clear() {
	for i := range s.bitmap {
		s.bitmap[i] = false
	}
}

// Render packs the bitmap into the frame, one sextant index per 2x3
// block. Cells are gathered top to bottom, left to right within each
// block. The frame is not updated by SetPixel; call Render again after
// mutating the bitmap.
func (s *Screen) Render() {
	if s.status != StatusReady {
		return
	}
	gw, gh := s.GlyphSize()
	for gy := 0; gy < gh; gy++ {
		for gx := 0; gx < gw; gx++ {
			var cells [6]bool
			i := 0
			for dy := 0; dy < cellHeight; dy++ {
				for dx := 0; dx < cellWidth; dx++ {
					cells[i] = s.Pixel(gx*cellWidth+dx, gy*cellHeight+dy)
					i++
				}
			}
			s.frame[gy*gw+gx] = sextant.Encode(cells)
		}
	}
}

// Frame returns a copy of the encoded glyph indices, row-major over
// glyph cells.
func (s *Screen) Frame() []uint8 {
	if s.status != StatusReady {
		return nil
	}
	frame := make([]uint8, len(s.frame))
	copy(frame, s.frame)
	return frame
}

// Rows converts the frame to one string per glyph row. Sextant glyphs
// are 4 bytes each in UTF-8, so each row is grown to its final size up
// front.
func (s *Screen) Rows() []string {
	if s.status != StatusReady {
		return nil
	}
	gw, gh := s.GlyphSize()
	rows := make([]string, gh)
	var sb strings.Builder
	for gy := 0; gy < gh; gy++ {
		sb.Reset()
		sb.Grow(gw * 4)
		for gx := 0; gx < gw; gx++ {
			sb.WriteString(sextant.Glyph(s.frame[gy*gw+gx]))
		}
		rows[gy] = sb.String()
	}
	return rows
}

// Destroy releases both buffers. The screen must be reinitialized before
// any further pixel access. Safe to call more than once.
func (s *Screen) Destroy() {
	s.bitmap = nil
	s.frame = nil
	s.status = StatusUninitialized
}
