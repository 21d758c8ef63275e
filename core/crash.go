// Package core restores the terminal when the process dies abnormally.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/binghan1227/tclock/terminal"
)

var (
	mu          sync.Mutex
	crashOut    io.Writer = os.Stdout
	crashErr    io.Writer = os.Stderr
	crashLog              = zap.NewNop().Sugar()
	crashExit             = os.Exit
	crashCloser func() error
)

// SetLogger routes crash reports to the debug log as well as stderr
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	crashLog = l
}

// SetCloser registers the normal teardown to run before the emergency reset
func SetCloser(fn func() error) {
	mu.Lock()
	defer mu.Unlock()
	crashCloser = fn
}

// HandleCrash resets the terminal, reports r with its stack and exits 1.
// A nil r is ignored so it can be called with recover() directly.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	stack := debug.Stack()

	if crashCloser != nil {
		crashCloser()
	}
	terminal.EmergencyReset(crashOut)

	crashLog.Errorw("crash", "panic", fmt.Sprint(r), "stack", string(stack))
	crashLog.Sync()

	fmt.Fprintf(crashErr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashErr, "Stack Trace:\r\n%s\r\n", stack)

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
