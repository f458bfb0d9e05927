//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/bamled/rgbled/board"
	"github.com/harveysanders/bamled/rgbled/cycle"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

// waitTicks overrides the ticks between hue steps, set via linker flags:
//
//	tinygo flash -target=pico -ldflags="-X main.waitTicks=512" ./bamcycle
var waitTicks string

var clock timebase.Clock

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	leds := board.DefaultPins()
	leds.ConfigurePins()

	cfg := cycle.FixedRate()
	wait, err := cycle.ParseTicks(waitTicks, cfg.WaitTicks)
	if err != nil {
		printErrForever(logger, "read wait ticks", slog.Any("reason", err))
	}
	cfg.WaitTicks = wait

	loop, err := cycle.New(cfg, &clock, leds)
	if err != nil {
		printErrForever(logger, "configure loop", slog.Any("reason", err))
	}

	err = board.StartTimebase(&clock)
	if err != nil {
		printErrForever(logger, "start timebase", slog.Any("reason", err))
	}

	logger.Info("bam:start",
		slog.Uint64("waitTicks", uint64(cfg.WaitTicks)),
		slog.Duration("tick", timebase.TickInterval),
	)
	// No logging from here on: serial writes would stretch a bit-plane.
	loop.Run()
}

// printErrForever logs msg to serial @ 1hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
