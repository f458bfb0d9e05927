// Package hue walks a color around the six edges of the RGB cube's hue
// hexagon, one unit per step.
//
//	(255,0,0) → (255,255,0) → (0,255,0) → (0,255,255) → (0,0,255) → (255,0,255) → (255,0,0)
//
// Every step is O(1) and never blocks, so a Ramp can be advanced from inside
// the BAM hold loop.
package hue

import (
	"github.com/harveysanders/bamled/rgbled/ledout"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

// Phase is one edge of the hexagon.
type Phase uint8

const (
	OffWheel   Phase = iota
	GreenRise        // R=255, B=0, G<255: G+1
	RedFall          // G=255, B=0, R>0: R-1
	BlueRise         // R=0, G=255, B<255: B+1
	GreenFall        // R=0, B=255, G>0: G-1
	RedRise          // G=0, B=255, R<255: R+1
	BlueFall         // R=255, G=0, B>0: B-1
)

var phaseNames = [...]string{"off-wheel", "green-rise", "red-fall", "blue-rise", "green-fall", "red-rise", "blue-fall"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "invalid"
}

// StepsPerPhase is the length of one hexagon edge.
const StepsPerPhase = 255

// StepsPerCycle is the number of steps to go once around the hexagon.
const StepsPerCycle = 6 * StepsPerPhase

// Start is the color the ramp conventionally begins from.
var Start = ledout.Color{R: 255}

// PhaseOf returns the transition Step would take from c. Conditions are tried
// in order and the first match wins.
func PhaseOf(c ledout.Color) Phase {
	switch {
	case c.R == 255 && c.B == 0 && c.G < 255:
		return GreenRise
	case c.G == 255 && c.B == 0 && c.R > 0:
		return RedFall
	case c.R == 0 && c.G == 255 && c.B < 255:
		return BlueRise
	case c.R == 0 && c.B == 255 && c.G > 0:
		return GreenFall
	case c.G == 0 && c.B == 255 && c.R < 255:
		return RedRise
	case c.R == 255 && c.G == 0 && c.B > 0:
		return BlueFall
	}
	return OffWheel
}

// OnWheel reports whether c lies on the hexagon. Colors off it never move.
func OnWheel(c ledout.Color) bool {
	return PhaseOf(c) != OffWheel
}

// Step returns c moved one unit along the hexagon.
func Step(c ledout.Color) ledout.Color {
	switch PhaseOf(c) {
	case GreenRise:
		c.G++
	case RedFall:
		c.R--
	case BlueRise:
		c.B++
	case GreenFall:
		c.G--
	case RedRise:
		c.R++
	case BlueFall:
		c.B--
	}
	return c
}

// Ramp is the color under construction plus the pacing that gates its steps.
// It is owned by the foreground loop and needs no locking.
type Ramp struct {
	color ledout.Color
	wait  uint16
	floor uint16
	start uint16
}

// NewRamp returns a ramp at color c that takes one step every wait ticks,
// never faster than every floor ticks.
func NewRamp(c ledout.Color, wait, floor uint16) *Ramp {
	return &Ramp{color: c, wait: wait, floor: floor}
}

// Color returns the ramp's current color.
func (r *Ramp) Color() ledout.Color {
	return r.color
}

// SetWait changes the number of ticks between steps.
func (r *Ramp) SetWait(ticks uint16) {
	r.wait = ticks
}

// Wait returns the effective number of ticks between steps, floor applied.
func (r *Ramp) Wait() uint16 {
	if r.wait < r.floor {
		return r.floor
	}
	return r.wait
}

// Advance takes one step if the wait has elapsed since the previous step, and
// reports whether it did.
func (r *Ramp) Advance(now uint16) bool {
	if !timebase.Elapsed(r.start, now, r.Wait()) {
		return false
	}
	r.color = Step(r.color)
	r.start = now
	return true
}
