package board

// rearm returns the first alarm deadline after prev that is still ahead of
// now, and how many deadlines were already behind the counter. Arithmetic is
// modulo 2^32 like TIMERAWL. An RP2040 alarm only fires when the counter
// equals it, so a deadline left behind would not fire until the counter wraps.
func rearm(prev, now, interval uint32) (next, missed uint32) {
	next = prev + interval
	if int32(next-now) > 0 {
		return next, 0
	}
	k := (now-next)/interval + 1
	return next + k*interval, k
}

const (
	adcClockHz      = 48_000_000
	adcConvCycles   = 96
	adcSampleRateHz = 1000
)

// adcDivider returns the DIV.INT value for free-running conversions at hz.
// Rates at or above the back-to-back conversion rate yield 0.
func adcDivider(hz uint32) uint32 {
	if hz == 0 || hz >= adcClockHz/adcConvCycles {
		return 0
	}
	return adcClockHz/hz - 1
}
