//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size returns the column and row count of the terminal behind f.
// There is no fallback size; callers treat an error as fatal.
func Size(f *os.File) (cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}

	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("TIOCGWINSZ on %s: %w", f.Name(), err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, fmt.Errorf("%s: %w", f.Name(), ErrNoSize)
	}
	return int(ws.Col), int(ws.Row), nil
}
