// Package rate turns the potentiometer reading into the hue ramp's pacing.
package rate

import (
	"time"

	"github.com/harveysanders/bamled/rgbled/hue"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

const (
	// Scale is the ticks of ramp wait per unit of ADC sample.
	Scale = 8
	// MinWaitTicks is the shortest wait between ramp steps the potentiometer
	// variant allows.
	MinWaitTicks = 10
)

// WaitTicks scales an 8-bit sample to a ramp wait in ticks.
func WaitTicks(sample uint8) uint16 {
	return uint16(sample) * Scale
}

// EffectiveWait is the wait a ramp floored at floor uses after an Update
// with sample.
func EffectiveWait(sample uint8, floor uint16) uint16 {
	return max(WaitTicks(sample), floor)
}

// CyclePeriod is how long one trip around the hue hexagon takes at the given
// wait.
func CyclePeriod(wait uint16) time.Duration {
	return timebase.Duration(uint32(wait) * hue.StepsPerCycle)
}

// Sampler returns the latest published ADC sample.
type Sampler interface {
	Sample() uint8
}

// Controller rescales a ramp from the latest ADC sample.
type Controller struct {
	src  Sampler
	ramp *hue.Ramp
}

// NewController returns a controller feeding ramp from src.
func NewController(src Sampler, ramp *hue.Ramp) *Controller {
	return &Controller{src: src, ramp: ramp}
}

// Update reads the sample and applies the new wait. It returns the wait set
// on the ramp before the floor is applied.
func (c *Controller) Update() uint16 {
	w := WaitTicks(c.src.Sample())
	c.ramp.SetWait(w)
	return w
}
