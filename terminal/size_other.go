//go:build !unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Size returns the column and row count of the terminal behind f
func Size(f *os.File) (cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}

	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size of %s: %w", f.Name(), err)
	}
	if cols == 0 || rows == 0 {
		return 0, 0, fmt.Errorf("%s: %w", f.Name(), ErrNoSize)
	}
	return cols, rows, nil
}
