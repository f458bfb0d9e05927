// Package bam renders 8-bit per-channel brightness with bit-angle modulation.
//
// A frame shows the eight bit-planes of the committed color from the most
// significant down. Plane k is held for 2^k ticks, so the share of a frame a
// channel spends high equals its value out of FrameTicks.
package bam

import (
	"github.com/harveysanders/bamled/rgbled/ledout"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

// FrameTicks is the length of one frame: 128+64+...+1.
const FrameTicks = 255

// Plane is a single-bit cursor over the bit-planes of a color. The same number
// is used twice: as a mask selecting which bit of each channel drives the pins,
// and as the number of ticks the plane is held.
type Plane uint8

const (
	First Plane = 0x80
	Last  Plane = 0x01
)

// Mask is the bit of each channel shown while p is active.
func (p Plane) Mask() uint8 { return uint8(p) }

// Hold is how many ticks p stays on the pins.
func (p Plane) Hold() uint16 { return uint16(p) }

// Next moves to the next less significant plane. It returns 0 after Last.
func (p Plane) Next() Plane { return p >> 1 }

// Clock is the tick source the encoder spins on.
type Clock interface {
	Now() uint16
}

// Encoder owns the committed color and drives the port one plane at a time.
type Encoder struct {
	clock     Clock
	port      ledout.Port
	committed ledout.Color
}

// NewEncoder returns an encoder that starts with every channel off.
func NewEncoder(clock Clock, port ledout.Port) *Encoder {
	return &Encoder{clock: clock, port: port}
}

// Committed returns the color being rendered.
func (e *Encoder) Committed() ledout.Color {
	return e.committed
}

// Latch replaces the committed color. Call it only between frames.
func (e *Encoder) Latch(c ledout.Color) {
	e.committed = c
}

// Render shows one full frame of the committed color. While a plane is held,
// idle is called repeatedly with the current tick; it must not block.
func (e *Encoder) Render(idle func(now uint16)) {
	for p := First; p != 0; p = p.Next() {
		e.port.Write(ledout.Map(e.committed, p.Mask()))
		start := e.clock.Now()
		for now := start; !timebase.Elapsed(start, now, p.Hold()); now = e.clock.Now() {
			if idle != nil {
				idle(now)
			}
		}
	}
}
