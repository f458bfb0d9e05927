// Package cycle wires the BAM encoder, the hue ramp and, optionally, the ADC
// rate controller into the firmware's control loop.
package cycle

import (
	"errors"
	"strconv"

	"github.com/harveysanders/bamled/rgbled/bam"
	"github.com/harveysanders/bamled/rgbled/hue"
	"github.com/harveysanders/bamled/rgbled/ledout"
	"github.com/harveysanders/bamled/rgbled/rate"
)

// DefaultWaitTicks is the fixed-rate variant's ticks between ramp steps.
const DefaultWaitTicks = 256

var (
	ErrOffWheel       = errors.New("start color is not on the hue wheel")
	ErrWaitBelowFloor = errors.New("wait is below the minimum wait")
)

// Config describes one firmware variant.
type Config struct {
	// Start is the ramp's first color. The committed color starts black.
	Start ledout.Color
	// WaitTicks is the initial ticks between ramp steps.
	WaitTicks uint16
	// MinWaitTicks floors the effective wait. Zero disables the floor.
	MinWaitTicks uint16
	// RateControl enables rescaling the wait from the ADC sample every frame.
	RateControl bool
}

// FixedRate is the configuration of the variant without a potentiometer.
func FixedRate() Config {
	return Config{Start: hue.Start, WaitTicks: DefaultWaitTicks}
}

// PotRate is the configuration of the potentiometer variant.
func PotRate() Config {
	return Config{
		Start:        hue.Start,
		WaitTicks:    DefaultWaitTicks,
		MinWaitTicks: rate.MinWaitTicks,
		RateControl:  true,
	}
}

// Validate checks c for a start color the ramp can move from and, for the fixed
// variant, a wait that the floor would not silently override.
func (c Config) Validate() error {
	if !hue.OnWheel(c.Start) {
		return ErrOffWheel
	}
	if !c.RateControl && c.WaitTicks < c.MinWaitTicks {
		return ErrWaitBelowFloor
	}
	return nil
}

// ParseTicks parses a tick count given as a string, typically from a linker
// flag. An empty string yields def.
func ParseTicks(s string, def uint16) (uint16, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errors.New("parse ticks " + strconv.Quote(s) + ":" + err.Error())
	}
	return uint16(v), nil
}

// Sensor is the shared clock/sensor state the loop reads.
type Sensor interface {
	bam.Clock
	rate.Sampler
}

// Loop is the foreground control loop.
type Loop struct {
	enc    *bam.Encoder
	ramp   *hue.Ramp
	rate   *rate.Controller
	idle   func(now uint16)
	spin   func()
	frames uint32
}

// New returns a loop rendering to port, timed and fed by sensor.
func New(cfg Config, sensor Sensor, port ledout.Port) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Loop{
		enc:  bam.NewEncoder(sensor, port),
		ramp: hue.NewRamp(cfg.Start, cfg.WaitTicks, cfg.MinWaitTicks),
	}
	if cfg.RateControl {
		l.rate = rate.NewController(sensor, l.ramp)
	}
	l.idle = l.advance
	return l, nil
}

// Frame renders one frame while advancing the ramp, then latches the ramp's
// color and, if enabled, rescales the ramp from the latest ADC sample.
func (l *Loop) Frame() {
	l.enc.Render(l.idle)
	l.enc.Latch(l.ramp.Color())
	if l.rate != nil {
		l.rate.Update()
	}
	l.frames++
}

func (l *Loop) advance(now uint16) {
	l.ramp.Advance(now)
	if l.spin != nil {
		l.spin()
	}
}

// SetSpinHook installs f to run once per spin of the plane hold loop, after
// the ramp has been advanced. Harnesses without a timer interrupt use it to
// advance the clock one tick at a time.
func (l *Loop) SetSpinHook(f func()) {
	l.spin = f
}

// Run renders frames forever.
func (l *Loop) Run() {
	for {
		l.Frame()
	}
}

// RunFrames renders n frames and returns.
func (l *Loop) RunFrames(n int) {
	for i := 0; i < n; i++ {
		l.Frame()
	}
}

// Committed returns the color being rendered.
func (l *Loop) Committed() ledout.Color { return l.enc.Committed() }

// Pending returns the ramp's color, shown from the next frame.
func (l *Loop) Pending() ledout.Color { return l.ramp.Color() }

// Wait returns the ramp's effective ticks between steps.
func (l *Loop) Wait() uint16 { return l.ramp.Wait() }

// Frames returns the number of completed frames, wrapping at 2^32.
func (l *Loop) Frames() uint32 { return l.frames }
