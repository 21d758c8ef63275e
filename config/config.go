// Package config holds the validated startup configuration of the clock.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/binghan1227/tclock/font"
	"github.com/binghan1227/tclock/terminal"
)

var (
	ErrScale           = errors.New("tile width and height must be positive")
	ErrCountdownSource = errors.New("countdown needs exactly one of -duration or -target")
)

// Config is fixed for the lifetime of the process once validated
type Config struct {
	// Tile scale: terminal cells per glyph pixel
	Width  int
	Height int

	// Offsets added to the centred position
	X int
	Y int

	TwelveHour bool
	Font       int
	Color      terminal.Color8
	Channel    terminal.Channel

	// Countdown is nil when no countdown was requested
	Countdown *Countdown

	Debug       bool
	MetricsAddr string
}

// Countdown configures the overlay row drawn above the clock
type Countdown struct {
	// Exactly one of Duration and Target is set
	Duration time.Duration
	Target   time.Time

	Width  int
	Height int
	X      int
	Y      int
	Font   int
	Color  terminal.Color8

	// Chime plays a sound when the countdown expires
	Chime bool
}

// Default returns the stock clock settings
func Default() Config {
	return Config{
		Width:   2,
		Height:  1,
		Font:    0,
		Color:   terminal.DefaultColor,
		Channel: terminal.ChannelBackground,
	}
}

// DefaultCountdown returns the stock countdown settings, without a source
func DefaultCountdown() Countdown {
	return Countdown{
		Width:  2,
		Height: 1,
		Font:   0,
		Color:  terminal.DefaultColor,
	}
}

// Validate reports every configuration problem at once
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("clock %dx%d: %w", c.Width, c.Height, ErrScale))
	}
	if err := font.Validate(c.Font, c.TwelveHour); err != nil {
		errs = append(errs, fmt.Errorf("clock: %w", err))
	}
	if c.Countdown != nil {
		if err := c.Countdown.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks the countdown section on its own
func (c Countdown) Validate() error {
	var errs []error
	hasDuration := c.Duration != 0
	hasTarget := !c.Target.IsZero()
	if hasDuration == hasTarget {
		errs = append(errs, ErrCountdownSource)
	}
	if c.Duration < 0 {
		errs = append(errs, fmt.Errorf("countdown duration %v: must be positive", c.Duration))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("countdown %dx%d: %w", c.Width, c.Height, ErrScale))
	}
	if err := font.Validate(c.Font, false); err != nil {
		errs = append(errs, fmt.Errorf("countdown: %w", err))
	}
	return errors.Join(errs...)
}
