package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

var (
	ErrNotTerminal = errors.New("output is not a terminal")
	ErrNoSize      = errors.New("terminal reported a zero size")
)

type flusher interface {
	Flush() error
}

// Session owns the hidden-cursor state of the output terminal.
// Open clears the screen and hides the cursor; Close clears the screen and
// shows the cursor again. Close is safe to call multiple times.
type Session struct {
	w io.Writer

	mu     sync.Mutex
	opened bool
	closed bool
}

// Open enters the session on w
func Open(w io.Writer) (*Session, error) {
	s := &Session{w: w}
	if err := s.write(csiClear, csiCursorHide); err != nil {
		return nil, err
	}
	s.opened = true
	return s, nil
}

// Close restores terminal state
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.closed {
		return nil
	}
	s.closed = true
	return s.write(csiClear, csiCursorShow)
}

// Closed reports whether Close already ran
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) write(seqs ...[]byte) error {
	var b []byte
	for _, seq := range seqs {
		b = append(b, seq...)
	}
	if _, err := s.w.Write(b); err != nil {
		return err
	}
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Close cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
