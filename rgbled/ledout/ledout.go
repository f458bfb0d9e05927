// Package ledout maps a color and the active bit-plane onto the levels of the
// three LED pins.
package ledout

// Color is an RGB triple, one 8-bit brightness per channel.
type Color struct {
	R, G, B uint8
}

// Levels holds one pin level per channel, set bit = pin high.
type Levels uint8

const (
	Red Levels = 1 << iota
	Green
	Blue
)

// Off is every pin low.
const Off Levels = 0

// High reports whether every channel in ch is driven high.
func (l Levels) High(ch Levels) bool {
	return l&ch == ch
}

func (l Levels) String() string {
	b := [3]byte{'r', 'g', 'b'}
	if l.High(Red) {
		b[0] = 'R'
	}
	if l.High(Green) {
		b[1] = 'G'
	}
	if l.High(Blue) {
		b[2] = 'B'
	}
	return string(b[:])
}

// Map returns the pin levels for c while the plane selected by mask is shown:
// a channel is high iff its value has the mask bit set.
func Map(c Color, mask uint8) Levels {
	var l Levels
	if c.R&mask != 0 {
		l |= Red
	}
	if c.G&mask != 0 {
		l |= Green
	}
	if c.B&mask != 0 {
		l |= Blue
	}
	return l
}

// Port drives all three pins in one write.
type Port interface {
	Write(l Levels)
}

// DutyMeter is a Port that accumulates how long each channel was held high.
// Time is measured with the supplied now function, in ticks.
type DutyMeter struct {
	now   func() uint16
	last  Levels
	since uint16
	on    [3]uint32
	total uint32
	begun bool
}

// NewDutyMeter returns a meter reading time from now.
func NewDutyMeter(now func() uint16) *DutyMeter {
	return &DutyMeter{now: now}
}

func (m *DutyMeter) Write(l Levels) {
	t := m.now()
	m.account(t)
	m.last = l
	m.since = t
	m.begun = true
}

// Flush closes the interval opened by the last Write.
func (m *DutyMeter) Flush() {
	t := m.now()
	m.account(t)
	m.since = t
}

func (m *DutyMeter) account(t uint16) {
	if !m.begun {
		return
	}
	d := uint32(t - m.since)
	m.total += d
	if m.last.High(Red) {
		m.on[0] += d
	}
	if m.last.High(Green) {
		m.on[1] += d
	}
	if m.last.High(Blue) {
		m.on[2] += d
	}
}

// OnTicks returns the accumulated high time per channel and the total time.
func (m *DutyMeter) OnTicks() (on OnTime, total uint32) {
	return OnTime{R: m.on[0], G: m.on[1], B: m.on[2]}, m.total
}

// Reset clears the accumulated counts. The next Write starts a new interval.
func (m *DutyMeter) Reset() {
	m.on = [3]uint32{}
	m.total = 0
	m.begun = false
}

// OnTime is a per-channel tick count.
type OnTime struct {
	R, G, B uint32
}

// Duty scales on-time to the 0..255 range of a channel value.
func Duty(on, total uint32) uint8 {
	if total == 0 {
		return 0
	}
	return uint8((uint64(on)*255 + uint64(total)/2) / uint64(total))
}
