// Package timebase holds the two values that cross the interrupt boundary: the
// 16-bit tick counter advanced by the timer interrupt and the latest 8-bit ADC
// sample published by the conversion interrupt.
//
// Both live in a single Clock with unexported fields; the only way to reach
// them is through the accessors below, each of which runs inside a
// critical section. Absolute tick values carry no meaning because the counter
// wraps at 65536. Compare ticks only through Since and Elapsed.
package timebase

import (
	"time"

	"github.com/harveysanders/bamled/rgbled/critical"
)

// TickInterval is the period of the timer interrupt.
const TickInterval = 25 * time.Microsecond

// Clock is the shared clock/sensor state.
type Clock struct {
	ticks  uint16
	sample uint8
}

// Tick advances the counter by one. Call it only from the timer interrupt.
func (c *Clock) Tick() {
	s := critical.Enter()
	c.ticks++
	critical.Exit(s)
}

// Advance moves the counter forward by n ticks at once, for a timer
// interrupt that finds it has missed deadlines.
func (c *Clock) Advance(n uint16) {
	s := critical.Enter()
	c.ticks += n
	critical.Exit(s)
}

// Now returns a tear-free copy of the tick counter.
func (c *Clock) Now() uint16 {
	s := critical.Enter()
	t := c.ticks
	critical.Exit(s)
	return t
}

// StoreSample publishes the most significant 8 bits of an ADC conversion.
// Call it only from the conversion interrupt.
func (c *Clock) StoreSample(v uint8) {
	s := critical.Enter()
	c.sample = v
	critical.Exit(s)
}

// Sample returns the most recently published ADC sample.
func (c *Clock) Sample() uint8 {
	s := critical.Enter()
	v := c.sample
	critical.Exit(s)
	return v
}

// Since returns the ticks elapsed from start to now, modulo 65536.
func Since(start, now uint16) uint16 {
	return now - start
}

// Elapsed reports whether at least d ticks separate start and now. It stays
// correct across a counter wrap as long as the real gap is below 65536 ticks.
func Elapsed(start, now, d uint16) bool {
	return now-start >= d
}

// Duration converts a tick count into wall time.
func Duration(ticks uint32) time.Duration {
	return time.Duration(ticks) * TickInterval
}
