package rate

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/harveysanders/bamled/rgbled/hue"
	"github.com/harveysanders/bamled/rgbled/timebase"
)

func TestWaitTicks(t *testing.T) {
	c := qt.New(t)
	c.Assert(WaitTicks(0), qt.Equals, uint16(0))
	c.Assert(WaitTicks(1), qt.Equals, uint16(8))
	c.Assert(WaitTicks(128), qt.Equals, uint16(1024))
	c.Assert(WaitTicks(255), qt.Equals, uint16(2040))
}

func TestControllerUpdate(t *testing.T) {
	tests := []struct {
		sample    uint8
		set       uint16
		effective uint16
	}{
		{0, 0, MinWaitTicks},
		{1, 8, MinWaitTicks},
		{2, 16, 16},
		{32, 256, 256},
		{255, 2040, 2040},
	}
	for _, test := range tests {
		c := qt.New(t)
		var clk timebase.Clock
		clk.StoreSample(test.sample)
		ramp := hue.NewRamp(hue.Start, 256, MinWaitTicks)
		ctl := NewController(&clk, ramp)

		c.Assert(ctl.Update(), qt.Equals, test.set)
		c.Assert(ramp.Wait(), qt.Equals, test.effective, qt.Commentf("sample %d", test.sample))
	}
}

func TestEffectiveWaitMatchesRamp(t *testing.T) {
	c := qt.New(t)
	var clk timebase.Clock
	ramp := hue.NewRamp(hue.Start, 256, MinWaitTicks)
	ctl := NewController(&clk, ramp)
	for v := 0; v < 256; v++ {
		clk.StoreSample(uint8(v))
		ctl.Update()
		c.Assert(EffectiveWait(uint8(v), MinWaitTicks), qt.Equals, ramp.Wait(), qt.Commentf("sample %d", v))
	}
	c.Assert(EffectiveWait(0, MinWaitTicks), qt.Equals, uint16(MinWaitTicks))
	c.Assert(EffectiveWait(255, MinWaitTicks), qt.Equals, uint16(2040))
}

func TestZeroSampleNeverFasterThanFloor(t *testing.T) {
	c := qt.New(t)
	var clk timebase.Clock
	ramp := hue.NewRamp(hue.Start, 256, MinWaitTicks)
	NewController(&clk, ramp).Update()

	steps := 0
	for now := uint16(1); now <= 100; now++ {
		if ramp.Advance(now) {
			steps++
		}
	}
	c.Assert(steps, qt.Equals, 10)
}

func TestCyclePeriod(t *testing.T) {
	c := qt.New(t)
	// 1530 steps of 256 ticks of 25µs.
	c.Assert(CyclePeriod(256), qt.Equals, 9792*time.Millisecond)
	c.Assert(CyclePeriod(MinWaitTicks), qt.Equals, 382500*time.Microsecond)
}
