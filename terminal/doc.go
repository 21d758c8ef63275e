// Package terminal provides the ANSI escape grammar used by the clock renderer.
//
// Features:
//   - Allocation-free cursor positioning and 256-color SGR fragments
//   - Background or foreground paint channel for lit cells
//   - Colour parsing from palette indices, names and #rrggbb values
//   - Terminal size query via TIOCGWINSZ
//   - Hidden-cursor session with idempotent teardown and emergency reset
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
