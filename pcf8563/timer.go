package pcf8563

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// TimerFrequency selects the source clock of the countdown timer.
type TimerFrequency uint8

// Values are the TD bit patterns of the timer control register.
const (
	TimerFreq4096Hz TimerFrequency = 0b00
	TimerFreq64Hz   TimerFrequency = 0b01
	TimerFreq1Hz    TimerFrequency = 0b10
	TimerFreq1_60Hz TimerFrequency = 0b11 // one tick per minute; power-on default
)

// Frequency returns the source clock rate.
func (f TimerFrequency) Frequency() physic.Frequency {
	switch f {
	case TimerFreq4096Hz:
		return 4096 * physic.Hertz
	case TimerFreq64Hz:
		return 64 * physic.Hertz
	case TimerFreq1Hz:
		return physic.Hertz
	case TimerFreq1_60Hz:
		return physic.Hertz / 60
	}
	return 0
}

func (f TimerFrequency) String() string {
	switch f {
	case TimerFreq4096Hz:
		return "4096Hz"
	case TimerFreq64Hz:
		return "64Hz"
	case TimerFreq1Hz:
		return "1Hz"
	case TimerFreq1_60Hz:
		return "1/60Hz"
	}
	return fmt.Sprintf("TimerFrequency(%d)", uint8(f))
}

// TimerConfig is the programmable state of the countdown timer. The countdown lasts Value periods of Frequency.
type TimerConfig struct {
	Enabled   bool
	Frequency TimerFrequency
	Value     uint8
}

// Timer is the countdown timer of a PCF8563. Every accessor is a separate bus transaction.
type Timer struct {
	h *Handle
}

// NewTimer returns the timer of the chip reached through src. Pass the *Device to share its connection, or Bus(i2c) to
// open a new one.
func NewTimer(src Source) *Timer {
	return &Timer{h: src.handle()}
}

// Enabled reports whether the timer is counting down.
func (t *Timer) Enabled() (bool, error) {
	return t.h.readBit(timerEnabledBit)
}

func (t *Timer) SetEnabled(enabled bool) error {
	return t.h.writeBit(timerEnabledBit, enabled)
}

func (t *Timer) Frequency() (TimerFrequency, error) {
	v, err := t.h.readBits(timerFreqBits)
	return TimerFrequency(v), err
}

func (t *Timer) SetFrequency(f TimerFrequency) error {
	if f > TimerFreq1_60Hz {
		return invalidArgument("timer frequency %d", uint8(f))
	}
	return t.h.writeBits(timerFreqBits, uint8(f))
}

// Value returns the current countdown value. It is undefined after power-up.
func (t *Timer) Value() (uint8, error) {
	return t.h.readBits(timerValueBits)
}

func (t *Timer) SetValue(v uint8) error {
	return t.h.writeBits(timerValueBits, v)
}

// Interrupt reports whether the INT pin asserts when the timer elapses.
func (t *Timer) Interrupt() (bool, error) {
	return t.h.readBit(timerInterruptBit)
}

func (t *Timer) SetInterrupt(enabled bool) error {
	return t.h.writeBit(timerInterruptBit, enabled)
}

// Status reports whether the timer has elapsed. The flag stays set until cleared with SetStatus(false).
func (t *Timer) Status() (bool, error) {
	return t.h.readBit(timerStatusBit)
}

func (t *Timer) SetStatus(status bool) error {
	return t.h.writeBit(timerStatusBit, status)
}

// Pulsed reports whether INT is asserted as a pulse rather than held until the status flag is cleared.
func (t *Timer) Pulsed() (bool, error) {
	return t.h.readBit(timerPulsedBit)
}

func (t *Timer) SetPulsed(pulsed bool) error {
	return t.h.writeBit(timerPulsedBit, pulsed)
}

// Config reads enable, frequency and value.
func (t *Timer) Config() (TimerConfig, error) {
	var c TimerConfig
	var err error
	c.Enabled, err = t.Enabled()
	if err != nil {
		return TimerConfig{}, err
	}
	c.Frequency, err = t.Frequency()
	if err != nil {
		return TimerConfig{}, err
	}
	c.Value, err = t.Value()
	if err != nil {
		return TimerConfig{}, err
	}
	return c, nil
}

// Configure writes the value and frequency before the enable bit, so an enabled timer never starts with a stale
// value.
func (t *Timer) Configure(c TimerConfig) error {
	if c.Frequency > TimerFreq1_60Hz {
		return invalidArgument("timer frequency %d", uint8(c.Frequency))
	}
	err := t.SetValue(c.Value)
	if err != nil {
		return err
	}
	err = t.SetFrequency(c.Frequency)
	if err != nil {
		return err
	}
	return t.SetEnabled(c.Enabled)
}
