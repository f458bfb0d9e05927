package ledout

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestMap(t *testing.T) {
	tests := []struct {
		c    Color
		mask uint8
		want Levels
	}{
		{Color{0, 0, 0}, 0x80, Off},
		{Color{255, 255, 255}, 0x01, Red | Green | Blue},
		{Color{0x80, 0x7f, 0x00}, 0x80, Red},
		{Color{0x80, 0x7f, 0x00}, 0x40, Green},
		{Color{170, 85, 1}, 0x02, Red},
		{Color{170, 85, 1}, 0x01, Green | Blue},
		{Color{0, 255, 0x10}, 0x10, Green | Blue},
	}
	for _, test := range tests {
		c := qt.New(t)
		c.Assert(Map(test.c, test.mask), qt.Equals, test.want,
			qt.Commentf("color %v mask %#02x", test.c, test.mask))
	}
}

func TestLevelsString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Off.String(), qt.Equals, "rgb")
	c.Assert((Red | Blue).String(), qt.Equals, "RgB")
	c.Assert((Red | Green | Blue).String(), qt.Equals, "RGB")
}

func TestDutyMeter(t *testing.T) {
	c := qt.New(t)
	var now uint16 = 65530
	m := NewDutyMeter(func() uint16 { return now })

	m.Write(Red | Green)
	now += 8
	m.Write(Green)
	now += 2
	m.Write(Off)
	now += 5
	m.Flush()

	on, total := m.OnTicks()
	c.Assert(total, qt.Equals, uint32(15))
	c.Assert(on, qt.Equals, OnTime{R: 8, G: 10, B: 0})

	m.Reset()
	on, total = m.OnTicks()
	c.Assert(total, qt.Equals, uint32(0))
	c.Assert(on, qt.Equals, OnTime{})
}

func TestDuty(t *testing.T) {
	c := qt.New(t)
	c.Assert(Duty(170, 255), qt.Equals, uint8(170))
	c.Assert(Duty(0, 255), qt.Equals, uint8(0))
	c.Assert(Duty(510, 510), qt.Equals, uint8(255))
	c.Assert(Duty(1, 0), qt.Equals, uint8(0))
}
