//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/bamled/rgbled/board"
	"github.com/harveysanders/bamled/rgbled/cycle"
	"github.com/harveysanders/bamled/rgbled/rate"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

// minWaitTicks overrides the fastest allowed hue step, set via linker flags.
var minWaitTicks string

// clock is shared between the timer and ADC interrupts and the loop.
var clock timebase.Clock

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	leds := board.DefaultPins()
	leds.ConfigurePins()

	cfg := cycle.PotRate()
	floor, err := cycle.ParseTicks(minWaitTicks, cfg.MinWaitTicks)
	if err != nil {
		printErrForever(logger, "read min wait ticks", slog.Any("reason", err))
	}
	cfg.MinWaitTicks = floor

	loop, err := cycle.New(cfg, &clock, leds)
	if err != nil {
		printErrForever(logger, "configure loop", slog.Any("reason", err))
	}

	err = board.StartADC(board.PotPin, &clock)
	if err != nil {
		printErrForever(logger, "start adc", slog.Any("reason", err))
	}
	err = board.StartTimebase(&clock)
	if err != nil {
		printErrForever(logger, "start timebase", slog.Any("reason", err))
	}

	logger.Info("bam:start",
		slog.Uint64("minWaitTicks", uint64(cfg.MinWaitTicks)),
		slog.Int("scale", rate.Scale),
		slog.Duration("fastestCycle", rate.CyclePeriod(cfg.MinWaitTicks)),
		slog.Duration("slowestCycle", rate.CyclePeriod(rate.WaitTicks(255))),
	)
	loop.Run()
}

// printErrForever logs msg to serial @ 1hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
