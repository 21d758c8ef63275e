// @lixen: #focus{sys[term,ansi]}
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear      = []byte("\x1b[2J")
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Colour prefixes, followed by N and 'm'
	csiFg256     = []byte("\x1b[38;5;")
	csiBg256     = []byte("\x1b[48;5;")
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// AppendInt appends the decimal form of n without going through strconv
// Optimized for terminal values (0-255 common, 0-999 typical max)
func AppendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(b, byte(n)+'0')
	}
	if n < 100 {
		return append(b, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(b, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(b, buf[i:]...)
}

// AppendCursorPos appends a cursor positioning sequence (0-indexed input)
func AppendCursorPos(b []byte, x, y int) []byte {
	b = append(b, csiCursorPos...)
	b = AppendInt(b, y+1)
	b = append(b, ';')
	b = AppendInt(b, x+1)
	return append(b, 'H')
}

// AppendClear appends the erase-display sequence
func AppendClear(b []byte) []byte {
	return append(b, csiClear...)
}
