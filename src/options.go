package sexel

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// Exit codes
const (
	ExitOk        = 0
	ExitError     = 2
	ExitInterrupt = 130
)

// Usage is printed for -h / --help.
const Usage = `usage: sexel [options]

  Display
    --width=COLS      Bitmap width in pixels (0-255, default: 20)
    --height=ROWS     Bitmap height in pixels (0-255, default: 20)
    --title=STR       Line to display centered above the frame
    --fps=N           Frames per second, 1-120 (default: 1)
    --frames=N        Number of frames to draw, 0 for unlimited (default: 0)
    --seed=N          Seed for the random fill (default: current time)

  Scripting
    --version         Display version information and exit
    -h, --help        Display this help and exit

  Environment variables
    SEXEL_DEFAULT_OPTS  Default options (e.g. '--fps=30 --width=120')
`

// Options stores the values of command-line options
type Options struct {
	Width   int
	Height  int
	Fps     int
	Frames  int
	Seed    int64
	Title   string
	Help    bool
	Version bool
}

func defaultOptions() *Options {
	return &Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Fps:    1,
		Frames: 0,
		Seed:   time.Now().UnixNano(),
	}
}

func optString(arg string, prefixes ...string) (bool, string) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(arg, prefix) {
			return true, arg[len(prefix):]
		}
	}
	return false, ""
}

func optionalNumeric(name string, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("invalid number for " + name + ": " + value)
	}
	return n, nil
}

func parseDimension(name string, value string) (int, error) {
	n, err := optionalNumeric(name, value)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > MaxDim {
		return 0, errors.Errorf("%s must be in [0, %d]: %d", name, MaxDim, n)
	}
	return n, nil
}

func parseOptions(opts *Options, allArgs []string) error {
	for _, arg := range allArgs {
		switch arg {
		case "-h", "--help":
			opts.Help = true
		case "--version":
			opts.Version = true
		default:
			var err error
			if match, value := optString(arg, "--width="); match {
				opts.Width, err = parseDimension("--width", value)
			} else if match, value := optString(arg, "--height="); match {
				opts.Height, err = parseDimension("--height", value)
			} else if match, value := optString(arg, "--fps="); match {
				opts.Fps, err = optionalNumeric("--fps", value)
				if err == nil && (opts.Fps < 1 || opts.Fps > 120) {
					err = errors.Errorf("--fps must be in [1, 120]: %d", opts.Fps)
				}
			} else if match, value := optString(arg, "--frames="); match {
				opts.Frames, err = optionalNumeric("--frames", value)
				if err == nil && opts.Frames < 0 {
					err = errors.Errorf("--frames must not be negative: %d", opts.Frames)
				}
			} else if match, value := optString(arg, "--seed="); match {
				var seed int
				seed, err = optionalNumeric("--seed", value)
				opts.Seed = int64(seed)
			} else if match, value := optString(arg, "--title="); match {
				if strings.ContainsAny(value, "\r\n\x1b") {
					err = errors.New("--title must not contain control characters")
				} else {
					opts.Title = value
				}
			} else {
				err = errors.New("unknown option: " + arg)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ParseOptions parses SEXEL_DEFAULT_OPTS and the command-line arguments,
// in that order.
func ParseOptions(args []string) (*Options, error) {
	opts := defaultOptions()
	words, err := shellwords.Parse(os.Getenv("SEXEL_DEFAULT_OPTS"))
	if err != nil {
		return nil, errors.Wrap(err, "$SEXEL_DEFAULT_OPTS")
	}
	if err := parseOptions(opts, append(words, args...)); err != nil {
		return nil, err
	}
	return opts, nil
}
