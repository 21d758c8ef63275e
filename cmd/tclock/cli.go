package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/binghan1227/tclock/config"
	"github.com/binghan1227/tclock/countdown"
	"github.com/binghan1227/tclock/font"
)

const envPrefix = "TCLOCK"

// rootFlags binds the clock's flags; short and long names share a target
type rootFlags struct {
	cfg config.Config
}

func (r *rootFlags) register(fs *flag.FlagSet) {
	c := &r.cfg
	fs.IntVar(&c.Height, "H", c.Height, "tile height in terminal rows per pixel")
	fs.IntVar(&c.Height, "height", c.Height, "alias for -H")
	fs.IntVar(&c.Width, "W", c.Width, "tile width in terminal columns per pixel")
	fs.IntVar(&c.Width, "width", c.Width, "alias for -W")
	fs.IntVar(&c.X, "x", c.X, "horizontal offset from centre, in cells")
	fs.IntVar(&c.Y, "y", c.Y, "vertical offset from centre, in cells")
	fs.BoolVar(&c.TwelveHour, "12", c.TwelveHour, "use 12-hour time with AM/PM")
	fs.IntVar(&c.Font, "f", c.Font, "font index ("+font.Describe()+")")
	fs.IntVar(&c.Font, "font", c.Font, "alias for -f")
	fs.Var(&c.Color, "c", "colour: 0-255, a name such as red, or #rrggbb")
	fs.Var(&c.Color, "color", "alias for -c")
	fs.Var(&c.Channel, "paint", "paint channel: bg or fg")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log to logs/tclock.log")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address, e.g. :9101")
	fs.String("config", "", "config file of 'flag value' lines")
}

// countdownFlags keeps the raw source strings until the command runs so
// a target time of day is resolved against the current instant
type countdownFlags struct {
	cd       config.Countdown
	duration string
	target   string
}

func (c *countdownFlags) register(fs *flag.FlagSet) {
	cd := &c.cd
	fs.StringVar(&c.duration, "d", "", "duration: 45, 30s, 10m, 1h or 1h30m")
	fs.StringVar(&c.duration, "duration", "", "alias for -d")
	fs.StringVar(&c.target, "t", "", "target: 15:04, 15:04:05, 2006-01-02 15:04 or 2006-01-02 15:04:05")
	fs.StringVar(&c.target, "target", "", "alias for -t")
	fs.IntVar(&cd.Height, "H", cd.Height, "countdown tile height")
	fs.IntVar(&cd.Width, "W", cd.Width, "countdown tile width")
	fs.IntVar(&cd.X, "x", cd.X, "countdown horizontal offset")
	fs.IntVar(&cd.Y, "y", cd.Y, "countdown vertical offset")
	fs.IntVar(&cd.Font, "f", cd.Font, "countdown font index")
	fs.Var(&cd.Color, "c", "countdown colour")
	fs.BoolVar(&cd.Chime, "chime", cd.Chime, "play a chime when the countdown ends")
}

// resolve turns the source strings into a duration or an absolute target
func (c *countdownFlags) resolve(now time.Time) (*config.Countdown, error) {
	cd := c.cd
	if c.duration != "" {
		d, err := countdown.ParseDuration(c.duration)
		if err != nil {
			return nil, err
		}
		cd.Duration = d
	}
	if c.target != "" {
		t, err := countdown.ParseTarget(c.target, now)
		if err != nil {
			return nil, err
		}
		cd.Target = t
	}
	return &cd, nil
}

// buildCLI wires the command tree. exec receives a validated config.
func buildCLI(now func() time.Time, exec func(context.Context, config.Config) error) *ffcli.Command {
	root := &rootFlags{cfg: config.Default()}
	rootFS := flag.NewFlagSet("tclock", flag.ContinueOnError)
	root.register(rootFS)

	cdFlags := &countdownFlags{cd: config.DefaultCountdown()}
	cdFS := flag.NewFlagSet("tclock countdown", flag.ContinueOnError)
	cdFlags.register(cdFS)

	runValidated := func(ctx context.Context, cfg config.Config) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return exec(ctx, cfg)
	}

	countdownCmd := &ffcli.Command{
		Name:       "countdown",
		ShortUsage: "tclock [flags] countdown (-d DURATION | -t TARGET) [flags]",
		ShortHelp:  "Show a countdown above the clock",
		FlagSet:    cdFS,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix + "_COUNTDOWN")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}
			cd, err := cdFlags.resolve(now())
			if err != nil {
				return err
			}
			cfg := root.cfg
			cfg.Countdown = cd
			return runValidated(ctx, cfg)
		},
	}

	return &ffcli.Command{
		Name:       "tclock",
		ShortUsage: "tclock [flags] [countdown [flags]]",
		ShortHelp:  "A block-digit clock for the terminal",
		LongHelp:   "Press Ctrl-C to exit. Flags may also be set with TCLOCK_<FLAG> environment variables or a -config file.",
		FlagSet:    rootFS,
		Options: []ff.Option{
			ff.WithEnvVarPrefix(envPrefix),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
		},
		Subcommands: []*ffcli.Command{countdownCmd},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q", args[0])
			}
			return runValidated(ctx, root.cfg)
		},
	}
}
