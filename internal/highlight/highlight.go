// Package highlight colors compiled HTML for terminal preview.
package highlight

import (
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
)

// DefaultTheme is the chroma style used for previews.
const DefaultTheme = "monokai"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WriterIsTerminal reports whether w is a terminal-backed *os.File.
func WriterIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}

// HTML writes src to w, with ANSI colors when color is set.
// An empty theme selects DefaultTheme.
func HTML(w io.Writer, src string, color bool, theme string) error {
	if !color {
		_, err := io.WriteString(w, src)
		return err
	}
	if theme == "" {
		theme = DefaultTheme
	}
	return quick.Highlight(w, src, "html", "terminal256", theme)
}
