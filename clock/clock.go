// Package clock runs the second-aligned render loop.
package clock

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/binghan1227/tclock/config"
	"github.com/binghan1227/tclock/countdown"
	"github.com/binghan1227/tclock/font"
	"github.com/binghan1227/tclock/render"
	"github.com/binghan1227/tclock/terminal"
)

var ErrNoSizeSource = errors.New("output is not a file and no size function was given")

// Observer receives per-frame measurements
type Observer interface {
	FrameRendered(elapsed time.Duration, bytes int)
	CountdownLeft(left time.Duration)
	CountdownExpired()
}

type nopObserver struct{}

func (nopObserver) FrameRendered(time.Duration, int) {}
func (nopObserver) CountdownLeft(time.Duration)      {}
func (nopObserver) CountdownExpired()                {}

// Options overrides the clock's collaborators. Zero values select the
// system defaults.
type Options struct {
	Time TimeProvider

	// Size reports the terminal size in cells. Defaults to querying out
	// when it is an *os.File.
	Size func() (cols, rows int, err error)

	Sleep func(time.Duration)

	Observer Observer

	// OnCountdownDone runs once, on the tick the countdown expires
	OnCountdownDone func()

	Logger *zap.SugaredLogger
}

// countingWriter tallies bytes that reach the terminal
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Clock owns the terminal for its lifetime. Construct with New, drive
// with Run and always Close.
type Clock struct {
	cfg     config.Config
	opts    Options
	counter *countingWriter
	out     *bufio.Writer
	session *terminal.Session
	draw    *render.Draw
	log     *zap.SugaredLogger

	font      *font.Font
	countdown *countdown.Countdown
	cdFont    *font.Font
	lastLen   int
}

// New validates cfg, starts the optional countdown and opens the terminal
// session on out.
func New(cfg config.Config, out io.Writer, opts Options) (*Clock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.Time == nil {
		opts.Time = SystemTime{}
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Size == nil {
		f, ok := out.(*os.File)
		if !ok {
			return nil, ErrNoSizeSource
		}
		opts.Size = func() (int, int, error) { return terminal.Size(f) }
	}

	f, err := font.Lookup(cfg.Font)
	if err != nil {
		return nil, err
	}

	c := &Clock{
		cfg:     cfg,
		opts:    opts,
		counter: &countingWriter{w: out},
		draw:    render.NewDraw(),
		log:     opts.Logger,
		font:    f,
	}
	c.out = bufio.NewWriterSize(c.counter, 8192)

	if cd := cfg.Countdown; cd != nil {
		if c.cdFont, err = font.Lookup(cd.Font); err != nil {
			return nil, err
		}
		if cd.Duration > 0 {
			c.countdown = countdown.NewDuration(opts.Time.Now(), cd.Duration)
		} else {
			c.countdown = countdown.NewTarget(cd.Target)
		}
		c.log.Infow("countdown started", "end", c.countdown.End())
	}

	if c.session, err = terminal.Open(c.out); err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return c, nil
}

// Run renders one frame per second until stop is set. Returns on the first
// size or write error.
func (c *Clock) Run(stop *atomic.Bool) error {
	cols, rows, err := c.opts.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	c.log.Debugw("terminal size", "cols", cols, "rows", rows)

	main := center(render.Config{
		Width:   c.cfg.Width,
		Height:  c.cfg.Height,
		X:       c.cfg.X,
		Y:       c.cfg.Y,
		Font:    c.cfg.Font,
		Color:   c.cfg.Color,
		Channel: c.cfg.Channel,
	}, c.font, SymbolCount(c.cfg.TwelveHour), cols, rows)

	for !stop.Load() {
		start := c.opts.Time.Now()
		written := c.counter.n

		if c.countdown != nil {
			if err := c.tickCountdown(start, cols, rows); err != nil {
				return err
			}
		}

		symbols := Format(FromTime(start), c.cfg.TwelveHour)
		if err := c.draw.ShowTime(symbols, main, c.out); err != nil {
			return fmt.Errorf("draw clock: %w", err)
		}
		if err := c.out.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		now := c.opts.Time.Now()
		c.opts.Observer.FrameRendered(now.Sub(start), c.counter.n-written)
		c.opts.Sleep(time.Second - time.Duration(now.Nanosecond()))
	}
	c.log.Debugw("render loop stopped")
	return nil
}

func (c *Clock) tickCountdown(now time.Time, cols, rows int) error {
	symbols := c.countdown.Remaining(now)
	if len(symbols) == 0 {
		c.countdown = nil
		c.opts.Observer.CountdownLeft(0)
		c.opts.Observer.CountdownExpired()
		c.log.Infow("countdown expired")
		if c.opts.OnCountdownDone != nil {
			c.opts.OnCountdownDone()
		}
		c.out.Write(terminal.AppendClear(nil))
		return nil
	}
	c.opts.Observer.CountdownLeft(c.countdown.Left(now))

	if len(symbols) != c.lastLen {
		c.lastLen = len(symbols)
		c.out.Write(terminal.AppendClear(nil))
	}

	cd := c.cfg.Countdown
	cfg := above(render.Config{
		Width:   cd.Width,
		Height:  cd.Height,
		X:       cd.X,
		Y:       cd.Y,
		Font:    cd.Font,
		Color:   cd.Color,
		Channel: c.cfg.Channel,
	}, c.cdFont, len(symbols), cols, rows)
	if err := c.draw.ShowTime(symbols, cfg, c.out); err != nil {
		return fmt.Errorf("draw countdown: %w", err)
	}
	return nil
}

// Close clears the screen and restores the cursor. Safe to call repeatedly.
func (c *Clock) Close() error {
	return c.session.Close()
}
