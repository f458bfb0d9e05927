// Package lcd provides a channel-based messaging system for HD44780 LCD displays.
//
// Example usage:
//
//	messages := make(chan lcd.Message, 4)
//	handler := lcd.NewHandler(device, messages, logger)
//	go handler.Run()
//
//	lcd.Send(messages, []byte("S:128 W:1024"), []byte("cycle 39.2s"))
package lcd

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Message represents a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

// Device is the subset of hd44780i2c.Device the handler drives.
type Device interface {
	ClearDisplay()
	SetCursor(col, row uint8)
	Print(data []byte)
}

// Handler processes LCD messages from a channel.
type Handler struct {
	device   Device
	messages <-chan Message
	logger   *slog.Logger
	columns  int
	shown    int
}

// NewHandler creates a new 16x2 LCD message handler.
func NewHandler(device Device, messages <-chan Message, logger *slog.Logger) *Handler {
	return &Handler{
		device:   device,
		messages: messages,
		logger:   logger,
		columns:  16,
	}
}

// Run processes messages from the channel and updates the LCD until the
// channel is closed. Run should be called in a separate goroutine.
func (h *Handler) Run() {
	for msg := range h.messages {
		h.display(msg)
	}
	h.logger.Debug("lcd:stopped", slog.Int("shown", h.shown))
}

// Shown returns the number of messages displayed so far.
func (h *Handler) Shown() int { return h.shown }

func (h *Handler) display(msg Message) {
	h.device.ClearDisplay()
	h.device.SetCursor(0, 0)
	h.device.Print(h.truncate(msg.Line1))
	h.device.SetCursor(0, 1)
	h.device.Print(h.truncate(msg.Line2))
	h.shown++
}

// truncate cuts in place, no allocation.
func (h *Handler) truncate(line []byte) []byte {
	if len(line) > h.columns {
		return line[:h.columns]
	}
	return line
}

// Send queues a message without blocking. It reports false if the queue is
// full and the message was dropped.
func Send(messages chan<- Message, line1, line2 []byte) bool {
	select {
	case messages <- Message{Line1: line1, Line2: line2}:
		return true
	default:
		return false
	}
}

// Reading formats a potentiometer reading as two display lines: the 8-bit
// sample with the resulting ramp wait, and the hue-cycle period. The lines
// are freshly allocated, since the handler reads them later.
func Reading(sample uint8, wait uint16, period time.Duration) (line1, line2 []byte) {
	const floatNoExp = 'f'
	line1 = make([]byte, 0, 16)
	line1 = append(line1, "S:"...)
	line1 = strconv.AppendUint(line1, uint64(sample), 10)
	line1 = append(line1, " W:"...)
	line1 = strconv.AppendUint(line1, uint64(wait), 10)

	line2 = make([]byte, 0, 16)
	line2 = append(line2, "cycle "...)
	line2 = strconv.AppendFloat(line2, period.Seconds(), floatNoExp, 1, 64)
	line2 = append(line2, 's')
	return line1, line2
}

// Configure takes a preconfigured I2C bus and initializes the HD44780 display
// on the first of the common backpack addresses (0x27, 0x3F) that answers.
func Configure(bus drivers.I2C) (hd44780i2c.Device, error) {
	// The PCF8574 backpack has no registers: a one-byte read returns its port.
	var probe [1]byte
	for _, a := range []uint8{0x27, 0x3F} {
		if err := bus.Tx(uint16(a), nil, probe[:]); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, a)
		dev.Configure(hd44780i2c.Config{
			Width:  16,
			Height: 2,
		})
		return dev, nil
	}
	return hd44780i2c.Device{}, errors.New("LCD not found on addresses: 0x27, 0x3f")
}
