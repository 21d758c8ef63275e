package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/binghan1227/tclock/audio"
	"github.com/binghan1227/tclock/clock"
	"github.com/binghan1227/tclock/config"
	"github.com/binghan1227/tclock/core"
	"github.com/binghan1227/tclock/metrics"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := buildCLI(time.Now, execClock)
	return root.ParseAndRun(context.Background(), args)
}

// execClock owns the process lifetime once the configuration is valid
func execClock(ctx context.Context, cfg config.Config) error {
	log, err := setupLogging(cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()
	core.SetLogger(log)
	log.Infow("starting", "config", cfg)

	opts := clock.Options{Logger: log}

	if cfg.MetricsAddr != "" {
		m := metrics.New()
		srv, err := metrics.Serve(cfg.MetricsAddr, m, log)
		if err != nil {
			return err
		}
		defer shutdownMetrics(srv, log)
		opts.Observer = m
	}

	if cfg.Countdown != nil && cfg.Countdown.Chime {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Warnw("audio unavailable, chime disabled", "error", err)
		} else {
			defer player.Cleanup()
			opts.OnCountdownDone = player.PlayChime
		}
	}

	clk, err := clock.New(cfg, os.Stdout, opts)
	if err != nil {
		return err
	}
	defer clk.Close()
	core.SetCloser(clk.Close)

	// Panics on this goroutine still restore the terminal
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var stop atomic.Bool
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		select {
		case s := <-sigs:
			log.Infow("signal received", "signal", s.String())
			stop.Store(true)
		case <-done:
		case <-ctx.Done():
			stop.Store(true)
		}
	})

	if err := clk.Run(&stop); err != nil {
		log.Errorw("render loop failed", "error", err)
		return err
	}
	return nil
}

func shutdownMetrics(srv *metrics.Server, log *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnw("metrics shutdown", "error", err)
	}
}
