//go:build tinygo && rp2040

package board

import (
	"device/rp"
	"errors"
	"runtime/interrupt"
	"time"

	"github.com/harveysanders/bamled/rgbled/timebase"
)

// TIMER counts microseconds regardless of the system clock, so the interval
// does not depend on clock configuration.
const tickMicros = uint32(timebase.TickInterval / time.Microsecond)

// Alarm 0 belongs to the TinyGo runtime.
var nextAlarm uint32

// StartTimebase arms TIMER alarm 1 to fire every tick and advance c.
func StartTimebase(c *timebase.Clock) error {
	if err := setClock(c); err != nil {
		return errors.New("start timebase:" + err.Error())
	}
	intr := interrupt.New(rp.IRQ_TIMER_IRQ_1, handleTick)
	intr.SetPriority(0x00)

	nextAlarm = rp.TIMER.TIMERAWL.Get() + tickMicros
	rp.TIMER.ALARM1.Set(nextAlarm)
	rp.TIMER.INTE.SetBits(rp.TIMER_INTE_ALARM_1)
	intr.Enable()
	return nil
}

func handleTick(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(rp.TIMER_INTR_ALARM_1)
	// Re-arm from the previous deadline so handler latency does not drift,
	// skipping any deadline the counter has already passed.
	next, missed := rearm(nextAlarm, rp.TIMER.TIMERAWL.Get(), tickMicros)
	nextAlarm = next
	rp.TIMER.ALARM1.Set(nextAlarm)
	if now := rp.TIMER.TIMERAWL.Get(); int32(nextAlarm-now) <= 0 {
		// Preempted between the read and the store.
		nextAlarm = now + tickMicros
		rp.TIMER.ALARM1.Set(nextAlarm)
		missed++
	}
	clock.Advance(uint16(missed) + 1)
}
