//go:build tinygo && rp2040

package board

import (
	"device/rp"
	"errors"
	"machine"
	"runtime/interrupt"

	"github.com/harveysanders/bamled/rgbled/timebase"
)

// PotPin is the potentiometer wiper, ADC channel 0.
const PotPin = machine.ADC0

// StartADC runs the ADC free-running on pin and publishes the top 8 bits of
// every conversion into c from the FIFO interrupt.
func StartADC(pin machine.Pin, c *timebase.Clock) error {
	if pin < machine.ADC0 || pin > machine.ADC3 {
		return errors.New("start adc: pin is not an ADC input")
	}
	if err := setClock(c); err != nil {
		return errors.New("start adc:" + err.Error())
	}

	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})

	ch := uint32(pin - machine.ADC0)
	rp.ADC.CS.ReplaceBits(ch, 0x7, rp.ADC_CS_AINSEL_Pos)
	// FIFO on, results shifted to 8 bits, interrupt at one entry.
	rp.ADC.FCS.Set(rp.ADC_FCS_EN | rp.ADC_FCS_SHIFT | 1<<rp.ADC_FCS_THRESH_Pos)
	// About 1 kS/s: the sample is read once per 6.4ms frame, so faster
	// conversions would only cost interrupt time.
	rp.ADC.DIV.Set(adcDivider(adcSampleRateHz) << rp.ADC_DIV_INT_Pos)
	rp.ADC.INTE.Set(rp.ADC_INTE_FIFO)

	intr := interrupt.New(rp.IRQ_ADC_IRQ_FIFO, handleSample)
	intr.SetPriority(0x40)
	intr.Enable()

	rp.ADC.CS.SetBits(rp.ADC_CS_START_MANY)
	return nil
}

func handleSample(interrupt.Interrupt) {
	// Reading the FIFO pops the entry and clears the level interrupt.
	clock.StoreSample(uint8(rp.ADC.FIFO.Get()))
}
