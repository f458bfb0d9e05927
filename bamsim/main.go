//go:build !tinygo

// Command bamsim runs the BAM color cycle on a host. The tick counter advances
// in virtual time, one tick per spin of the hold loop, and frames are paced to
// the wall clock. A goroutine stands in for the ADC interrupt. The LED pins are
// replaced by a duty meter, and the committed color is logged next to the duty
// actually measured.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/harveysanders/bamled/rgbled/cycle"
	"github.com/harveysanders/bamled/rgbled/hue"
	"github.com/harveysanders/bamled/rgbled/ledout"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

func main() {
	var (
		pot      = flag.Bool("pot", false, "simulate the potentiometer variant")
		wait     = flag.Uint("wait", cycle.DefaultWaitTicks, "ticks between hue steps (fixed variant)")
		sweep    = flag.Duration("sweep", 20*time.Second, "time for the simulated potentiometer to go 0→255→0")
		duration = flag.Duration("duration", 10*time.Second, "how long to run, 0 to run until interrupted")
		every    = flag.Int("every", 100, "log every n frames")
		debug    = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg := cycle.FixedRate()
	if *pot {
		cfg = cycle.PotRate()
	}
	if *wait > 0xffff {
		logger.Error("wait out of range", slog.Uint64("wait", uint64(*wait)))
		os.Exit(2)
	}
	cfg.WaitTicks = uint16(*wait)
	if *every < 1 {
		*every = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	sm, err := newSim(cfg)
	if err != nil {
		logger.Error("configure loop", slog.Any("reason", err))
		os.Exit(1)
	}
	if cfg.RateControl {
		go runPot(ctx, &sm.clock, *sweep)
	}

	logger.Info("bamsim:start",
		slog.Bool("pot", cfg.RateControl),
		slog.Uint64("waitTicks", uint64(cfg.WaitTicks)),
		slog.Duration("tick", timebase.TickInterval),
	)
	frames := sm.run(ctx, *every, logger)
	logger.Info("bamsim:done", slog.Uint64("frames", uint64(frames)))
}

// sim runs the loop in virtual time: the clock advances exactly one tick per
// spin of the hold loop, so plane timing is the same as on hardware however
// the host schedules goroutines.
type sim struct {
	clock timebase.Clock
	meter *ledout.DutyMeter
	loop  *cycle.Loop
}

func newSim(cfg cycle.Config) (*sim, error) {
	s := &sim{}
	s.meter = ledout.NewDutyMeter(s.clock.Now)
	loop, err := cycle.New(cfg, &s.clock, s.meter)
	if err != nil {
		return nil, err
	}
	loop.SetSpinHook(s.clock.Tick)
	s.loop = loop
	return s, nil
}

type frameStats struct {
	n     uint32
	shown ledout.Color
	duty  ledout.Color
	ticks uint32
}

// frame renders one frame and measures what the pins did during it.
func (s *sim) frame() frameStats {
	shown := s.loop.Committed()
	s.meter.Reset()
	s.loop.Frame()
	s.meter.Flush()
	on, total := s.meter.OnTicks()
	return frameStats{
		n:     s.loop.Frames(),
		shown: shown,
		duty: ledout.Color{
			R: ledout.Duty(on.R, total),
			G: ledout.Duty(on.G, total),
			B: ledout.Duty(on.B, total),
		},
		ticks: total,
	}
}

// run renders frames until ctx is done, sleeping between frames so virtual
// time keeps pace with the wall clock. It returns the frame count.
func (s *sim) run(ctx context.Context, every int, logger *slog.Logger) uint32 {
	start := time.Now()
	var ticks int64
	for ctx.Err() == nil {
		st := s.frame()
		ticks += int64(st.ticks)
		if int(st.n)%every == 0 {
			logger.Info("frame",
				slog.Uint64("n", uint64(st.n)),
				slog.Any("color", st.shown),
				slog.String("phase", hue.PhaseOf(s.loop.Pending()).String()),
				slog.Uint64("waitTicks", uint64(s.loop.Wait())),
				slog.Any("duty", st.duty),
				slog.Uint64("frameTicks", uint64(st.ticks)),
			)
		}
		ahead := time.Until(start.Add(time.Duration(ticks) * timebase.TickInterval))
		if ahead <= 0 {
			continue
		}
		t := time.NewTimer(ahead)
		select {
		case <-ctx.Done():
		case <-t.C:
		}
		t.Stop()
	}
	return s.loop.Frames()
}

// runPot publishes a triangle wave of samples, as the ADC interrupt would for
// someone turning the potentiometer back and forth.
func runPot(ctx context.Context, clock *timebase.Clock, sweep time.Duration) {
	t := time.NewTicker(time.Millisecond)
	defer t.Stop()
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			clock.StoreSample(triangle(time.Since(start), sweep))
		}
	}
}

// triangle maps elapsed onto 0→255→0 over period.
func triangle(elapsed, period time.Duration) uint8 {
	if period <= 0 {
		return 255
	}
	phase := elapsed % period
	half := period / 2
	if phase < half {
		return uint8(int64(phase) * 255 / int64(half))
	}
	return uint8(int64(period-phase) * 255 / int64(period-half))
}
