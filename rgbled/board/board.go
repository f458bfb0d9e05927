//go:build tinygo

// Package board binds the control loop to RP2040 peripherals: three LED pins,
// a 25µs timer interrupt and a free-running ADC.
//
// Everything here runs once at startup except the two interrupt handlers,
// which only touch the shared timebase.Clock.
package board

import (
	"errors"
	"machine"

	"github.com/harveysanders/bamled/rgbled/ledout"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

// LED pins on the Pico header.
const (
	RedPin   = machine.GP13
	GreenPin = machine.GP14
	BluePin  = machine.GP15
)

// clock is the state the interrupt handlers publish into. Handlers registered
// with interrupt.New cannot capture variables.
var clock *timebase.Clock

var errClockSet = errors.New("interrupt clock already set")

func setClock(c *timebase.Clock) error {
	if clock != nil && clock != c {
		return errClockSet
	}
	clock = c
	return nil
}

// PinPort drives the three LED pins.
type PinPort struct {
	Red, Green, Blue machine.Pin
}

// DefaultPins returns the port on RedPin, GreenPin and BluePin.
func DefaultPins() PinPort {
	return PinPort{Red: RedPin, Green: GreenPin, Blue: BluePin}
}

// ConfigurePins sets the pins as outputs and drives them low.
func (p PinPort) ConfigurePins() {
	for _, pin := range [...]machine.Pin{p.Red, p.Green, p.Blue} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
}

// Write sets all three pins. The three stores complete within a few cycles,
// far below one tick.
func (p PinPort) Write(l ledout.Levels) {
	p.Red.Set(l.High(ledout.Red))
	p.Green.Set(l.High(ledout.Green))
	p.Blue.Set(l.High(ledout.Blue))
}
