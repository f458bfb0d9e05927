package hue

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/harveysanders/bamled/rgbled/ledout"
)

func TestFullCycle(t *testing.T) {
	c := qt.New(t)
	boundaries := []struct {
		phase Phase
		want  ledout.Color
	}{
		{GreenRise, ledout.Color{R: 255, G: 255, B: 0}},
		{RedFall, ledout.Color{R: 0, G: 255, B: 0}},
		{BlueRise, ledout.Color{R: 0, G: 255, B: 255}},
		{GreenFall, ledout.Color{R: 0, G: 0, B: 255}},
		{RedRise, ledout.Color{R: 255, G: 0, B: 255}},
		{BlueFall, ledout.Color{R: 255, G: 0, B: 0}},
	}

	col := Start
	steps := 0
	for _, b := range boundaries {
		c.Assert(PhaseOf(col), qt.Equals, b.phase, qt.Commentf("at %v", col))
		for i := 0; i < StepsPerPhase; i++ {
			c.Assert(PhaseOf(col), qt.Equals, b.phase, qt.Commentf("step %d at %v", i, col))
			col = Step(col)
			steps++
		}
		c.Assert(col, qt.Equals, b.want, qt.Commentf("end of %v", b.phase))
	}
	c.Assert(steps, qt.Equals, StepsPerCycle)
	c.Assert(col, qt.Equals, Start)
}

func TestCycleStaysOnWheel(t *testing.T) {
	c := qt.New(t)
	seen := make(map[ledout.Color]bool)
	col := Start
	for i := 0; i < StepsPerCycle; i++ {
		c.Assert(OnWheel(col), qt.IsTrue)
		c.Assert(seen[col], qt.IsFalse, qt.Commentf("revisited %v at step %d", col, i))
		seen[col] = true
		col = Step(col)
	}
	c.Assert(seen, qt.HasLen, StepsPerCycle)
}

func TestOffWheelIsInert(t *testing.T) {
	c := qt.New(t)
	for _, col := range []ledout.Color{
		{R: 0, G: 0, B: 0},
		{R: 128, G: 128, B: 128},
		{R: 10, G: 20, B: 30},
		{R: 255, G: 255, B: 255},
	} {
		c.Assert(PhaseOf(col), qt.Equals, OffWheel)
		c.Assert(Step(col), qt.Equals, col)
	}
}

func TestPhaseString(t *testing.T) {
	c := qt.New(t)
	c.Assert(GreenRise.String(), qt.Equals, "green-rise")
	c.Assert(OffWheel.String(), qt.Equals, "off-wheel")
	c.Assert(Phase(42).String(), qt.Equals, "invalid")
}

func TestAdvanceGatedByWait(t *testing.T) {
	c := qt.New(t)
	r := NewRamp(Start, 256, 0)

	c.Assert(r.Advance(255), qt.IsFalse)
	c.Assert(r.Color(), qt.Equals, Start)
	c.Assert(r.Advance(256), qt.IsTrue)
	c.Assert(r.Color(), qt.Equals, ledout.Color{R: 255, G: 1})

	// The next step is measured from the previous one.
	c.Assert(r.Advance(511), qt.IsFalse)
	c.Assert(r.Advance(512), qt.IsTrue)
	c.Assert(r.Color(), qt.Equals, ledout.Color{R: 255, G: 2})
}

func TestAdvanceAcrossWrap(t *testing.T) {
	c := qt.New(t)
	r := NewRamp(Start, 10, 0)
	c.Assert(r.Advance(65530), qt.IsTrue)
	c.Assert(r.Advance(3), qt.IsFalse)
	c.Assert(r.Advance(4), qt.IsTrue)
	c.Assert(r.Color(), qt.Equals, ledout.Color{R: 255, G: 2})
}

func TestWaitFloor(t *testing.T) {
	c := qt.New(t)
	r := NewRamp(Start, 0, 10)
	c.Assert(r.Wait(), qt.Equals, uint16(10))

	c.Assert(r.Advance(9), qt.IsFalse)
	c.Assert(r.Advance(10), qt.IsTrue)

	r.SetWait(2040)
	c.Assert(r.Wait(), qt.Equals, uint16(2040))
	r.SetWait(11)
	c.Assert(r.Wait(), qt.Equals, uint16(11))
}

func TestAdvanceOneStepPerWait(t *testing.T) {
	c := qt.New(t)
	r := NewRamp(Start, 3, 0)
	steps := 0
	for now := uint16(1); now <= 3*StepsPerCycle; now++ {
		if r.Advance(now) {
			steps++
		}
	}
	c.Assert(steps, qt.Equals, StepsPerCycle)
	c.Assert(r.Color(), qt.Equals, Start)
}
