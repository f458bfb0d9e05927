//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/bamled/potcal/lcd"
	"github.com/harveysanders/bamled/rgbled/board"
	"github.com/harveysanders/bamled/rgbled/rate"
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	debugLED := machine.GP21
	debugLED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.InitADC()
	sensor := machine.ADC{Pin: board.PotPin}
	sensor.Configure(machine.ADCConfig{})

	// Setup LCD display over I2C
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}
	dev, err := lcd.Configure(machine.I2C0)
	if err != nil {
		printErrForever(logger, "configure LCD", slog.Any("reason", err))
	}

	messages := make(chan lcd.Message, 4)
	go lcd.NewHandler(&dev, messages, logger).Run()

	for {
		val := sensor.Get()
		// The firmware keeps the top 8 bits of each conversion.
		sample := uint8(val >> 8)
		wait := rate.EffectiveWait(sample, rate.MinWaitTicks)
		period := rate.CyclePeriod(wait)

		line1, line2 := lcd.Reading(sample, wait, period)
		if !lcd.Send(messages, line1, line2) {
			logger.Warn("lcd:dropped")
		}
		logger.Debug("potcal",
			slog.Uint64("raw", uint64(val)),
			slog.Uint64("sample", uint64(sample)),
			slog.Uint64("waitTicks", uint64(wait)),
			slog.Duration("cycle", period),
		)

		debugLED.High()
		time.Sleep(250 * time.Millisecond)
		debugLED.Low()
		time.Sleep(250 * time.Millisecond)
	}
}

// printErrForever logs msg to serial @ 1hz. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
