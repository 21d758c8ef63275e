package clock

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/binghan1227/tclock/config"
	"github.com/binghan1227/tclock/font"
)

const (
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

var noon = time.Date(2025, 7, 19, 12, 0, 0, 0, time.UTC)

type recordingObserver struct {
	frames  int
	bytes   int
	left    []time.Duration
	expired int
}

func (r *recordingObserver) FrameRendered(_ time.Duration, n int) {
	r.frames++
	r.bytes += n
}
func (r *recordingObserver) CountdownLeft(d time.Duration) { r.left = append(r.left, d) }
func (r *recordingObserver) CountdownExpired()             { r.expired++ }

// harness stops the loop after a fixed number of sleeps, advancing the mock
// clock by each requested duration
type harness struct {
	mock   *MockTime
	stop   atomic.Bool
	ticks  int
	limit  int
	slept  []time.Duration
	obs    *recordingObserver
	out    bytes.Buffer
	opts   Options
	doneAt []int
}

func newHarness(start time.Time, limit int) *harness {
	h := &harness{mock: NewMockTime(start), limit: limit, obs: &recordingObserver{}}
	h.opts = Options{
		Time:     h.mock,
		Size:     func() (int, int, error) { return 120, 24, nil },
		Observer: h.obs,
		Sleep: func(d time.Duration) {
			h.slept = append(h.slept, d)
			h.mock.Advance(d)
			h.ticks++
			if h.ticks >= h.limit {
				h.stop.Store(true)
			}
		},
		OnCountdownDone: func() { h.doneAt = append(h.doneAt, h.ticks) },
	}
	return h
}

func TestFormat(t *testing.T) {
	const c = font.Colon
	tests := []struct {
		name   string
		at     time.Time
		twelve bool
		want   []font.Symbol
	}{
		{"24h afternoon", time.Date(2025, 1, 1, 13, 5, 9, 0, time.UTC), false,
			[]font.Symbol{1, 3, c, 0, 5, c, 0, 9}},
		{"24h midnight", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false,
			[]font.Symbol{0, 0, c, 0, 0, c, 0, 0}},
		{"12h pm", time.Date(2025, 1, 1, 13, 5, 9, 0, time.UTC), true,
			[]font.Symbol{0, 1, c, 0, 5, c, 0, 9, font.Space, font.P, font.M}},
		{"12h midnight shows 12 AM", time.Date(2025, 1, 1, 0, 30, 0, 0, time.UTC), true,
			[]font.Symbol{1, 2, c, 3, 0, c, 0, 0, font.Space, font.A, font.M}},
		{"12h noon shows 12 PM", time.Date(2025, 1, 1, 12, 0, 1, 0, time.UTC), true,
			[]font.Symbol{1, 2, c, 0, 0, c, 0, 1, font.Space, font.P, font.M}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(FromTime(tt.at), tt.twelve)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Format = %v, want %v", got, tt.want)
			}
			if len(got) != SymbolCount(tt.twelve) {
				t.Errorf("len = %d, want %d", len(got), SymbolCount(tt.twelve))
			}
		})
	}
}

func TestMockTime(t *testing.T) {
	m := NewMockTime(noon)
	m.Advance(90 * time.Second)
	if want := noon.Add(90 * time.Second); !m.Now().Equal(want) {
		t.Errorf("after Advance: %v, want %v", m.Now(), want)
	}
	m.SetTime(noon)
	if !m.Now().Equal(noon) {
		t.Errorf("after SetTime: %v, want %v", m.Now(), noon)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Font, cfg.TwelveHour = 2, true

	var out bytes.Buffer
	_, err := New(cfg, &out, Options{Size: func() (int, int, error) { return 80, 24, nil }})
	if !errors.Is(err, font.ErrNoTwelveHour) {
		t.Fatalf("New() = %v, want ErrNoTwelveHour", err)
	}
	if out.Len() != 0 {
		t.Errorf("terminal touched before validation: %q", out.String())
	}
}

func TestNewNeedsSizeSource(t *testing.T) {
	var out bytes.Buffer
	if _, err := New(config.Default(), &out, Options{}); !errors.Is(err, ErrNoSizeSource) {
		t.Fatalf("New() = %v, want ErrNoSizeSource", err)
	}
}

func TestRunStopsAndTearsDownOnce(t *testing.T) {
	h := newHarness(noon.Add(250*time.Millisecond), 3)
	clk, err := New(config.Default(), &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(h.out.String(), clearScreen+hideCursor) {
		t.Fatalf("session open missing: %q", h.out.String())
	}

	if err := clk.Run(&h.stop); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.obs.frames != 3 {
		t.Errorf("frames = %d, want 3", h.obs.frames)
	}
	if h.slept[0] != 750*time.Millisecond {
		t.Errorf("first sleep = %v, want 750ms to the second boundary", h.slept[0])
	}
	for _, d := range h.slept[1:] {
		if d != time.Second {
			t.Errorf("aligned sleep = %v, want 1s", d)
		}
	}

	clk.Close()
	clk.Close()
	out := h.out.String()
	if !strings.HasSuffix(out, clearScreen+showCursor) {
		t.Errorf("teardown missing at end: %q", out[len(out)-20:])
	}
	if n := strings.Count(out, showCursor); n != 1 {
		t.Errorf("cursor shown %d times, want 1", n)
	}
	if h.obs.bytes != len(out)-len(clearScreen+hideCursor)-len(clearScreen+showCursor) {
		t.Errorf("observed %d frame bytes, output holds %d", h.obs.bytes, len(out))
	}
}

func TestRunStopFlagAlreadySet(t *testing.T) {
	h := newHarness(noon, 1)
	clk, err := New(config.Default(), &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	h.stop.Store(true)
	if err := clk.Run(&h.stop); err != nil {
		t.Fatal(err)
	}
	if h.obs.frames != 0 {
		t.Errorf("rendered %d frames after stop", h.obs.frames)
	}
}

func TestRunCentresClock(t *testing.T) {
	h := newHarness(noon, 1)
	clk, err := New(config.Default(), &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); err != nil {
		t.Fatal(err)
	}
	// 8 symbols of font 0 at 2x1: 96x7 cells on 120x24 puts the corner at (12, 9)
	if !strings.Contains(h.out.String(), "\x1b[10;13H") {
		t.Errorf("first clock row not at row 10 col 13")
	}
	if strings.Contains(h.out.String(), "\x1b[17;13H") {
		t.Errorf("clock drew an eighth row")
	}
}

func TestRunOffsetClampedAtZero(t *testing.T) {
	h := newHarness(noon, 1)
	cfg := config.Default()
	cfg.X, cfg.Y = -500, -500
	clk, err := New(cfg, &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "\x1b[1;1H") {
		t.Errorf("clamped clock not at origin")
	}
}

func TestRunSizeErrorAbortsBeforeFrame(t *testing.T) {
	h := newHarness(noon, 1)
	errSize := errors.New("no tty")
	h.opts.Size = func() (int, int, error) { return 0, 0, errSize }

	clk, err := New(config.Default(), &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); !errors.Is(err, errSize) {
		t.Fatalf("Run = %v, want size error", err)
	}
	if h.out.String() != clearScreen+hideCursor {
		t.Errorf("frame written despite size error: %q", h.out.String())
	}
	clk.Close()
	if !strings.HasSuffix(h.out.String(), clearScreen+showCursor) {
		t.Error("teardown not written after size error")
	}
}

type failingWriter struct {
	allowed int
	err     error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allowed == 0 {
		return 0, w.err
	}
	w.allowed--
	return len(p), nil
}

func TestRunPropagatesWriteError(t *testing.T) {
	h := newHarness(noon, 5)
	errPipe := errors.New("broken pipe")
	w := &failingWriter{allowed: 1, err: errPipe}

	clk, err := New(config.Default(), w, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); !errors.Is(err, errPipe) {
		t.Fatalf("Run = %v, want broken pipe", err)
	}
	if h.ticks != 0 {
		t.Errorf("loop slept %d times after a write error", h.ticks)
	}
}

func TestRunCountdownExpiry(t *testing.T) {
	h := newHarness(noon, 4)
	cfg := config.Default()
	cd := config.DefaultCountdown()
	cd.Duration = 2 * time.Second
	cfg.Countdown = &cd

	clk, err := New(cfg, &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); err != nil {
		t.Fatal(err)
	}

	// Open, first countdown frame, expiry
	if n := strings.Count(h.out.String(), clearScreen); n != 3 {
		t.Errorf("screen cleared %d times, want 3", n)
	}
	if !reflect.DeepEqual(h.doneAt, []int{2}) {
		t.Errorf("expiry hook ran at ticks %v, want [2]", h.doneAt)
	}
	if h.obs.expired != 1 {
		t.Errorf("expired observed %d times, want 1", h.obs.expired)
	}
	want := []time.Duration{2 * time.Second, time.Second, 0}
	if !reflect.DeepEqual(h.obs.left, want) {
		t.Errorf("countdown left = %v, want %v", h.obs.left, want)
	}
}

func TestRunCountdownPlacedAboveClock(t *testing.T) {
	h := newHarness(noon, 1)
	cfg := config.Default()
	cd := config.DefaultCountdown()
	cd.Duration = 30 * time.Second
	cfg.Countdown = &cd

	clk, err := New(cfg, &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); err != nil {
		t.Fatal(err)
	}
	// Two symbols, 24 cells wide, centred at col 48; 24/2 - 7 - 3 - 2 = 0
	if !strings.Contains(h.out.String(), "\x1b[1;49H") {
		t.Errorf("countdown not drawn at row 1 col 49")
	}
}

func TestRunCountdownWidthChangeClears(t *testing.T) {
	h := newHarness(noon, 3)
	cfg := config.Default()
	cd := config.DefaultCountdown()
	cd.Duration = 61 * time.Second
	cfg.Countdown = &cd

	clk, err := New(cfg, &h.out, h.opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := clk.Run(&h.stop); err != nil {
		t.Fatal(err)
	}
	// 01:01, 01:00, 59: open plus the first frame plus the narrowing
	if n := strings.Count(h.out.String(), clearScreen); n != 3 {
		t.Errorf("screen cleared %d times, want 3", n)
	}
}
