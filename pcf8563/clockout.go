package pcf8563

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// ClockoutFrequency selects the square wave on the CLKOUT pin.
type ClockoutFrequency uint8

// Values are the FD bit patterns of the CLKOUT control register.
const (
	ClockoutFreq32768Hz ClockoutFrequency = 0b00 // power-on default
	ClockoutFreq1024Hz  ClockoutFrequency = 0b01
	ClockoutFreq32Hz    ClockoutFrequency = 0b10
	ClockoutFreq1Hz     ClockoutFrequency = 0b11
)

func (f ClockoutFrequency) Frequency() physic.Frequency {
	switch f {
	case ClockoutFreq32768Hz:
		return 32768 * physic.Hertz
	case ClockoutFreq1024Hz:
		return 1024 * physic.Hertz
	case ClockoutFreq32Hz:
		return 32 * physic.Hertz
	case ClockoutFreq1Hz:
		return physic.Hertz
	}
	return 0
}

func (f ClockoutFrequency) String() string {
	switch f {
	case ClockoutFreq32768Hz:
		return "32768Hz"
	case ClockoutFreq1024Hz:
		return "1024Hz"
	case ClockoutFreq32Hz:
		return "32Hz"
	case ClockoutFreq1Hz:
		return "1Hz"
	}
	return fmt.Sprintf("ClockoutFrequency(%d)", uint8(f))
}

type ClockoutConfig struct {
	Enabled   bool
	Frequency ClockoutFrequency
}

// Clock controls the CLKOUT pin. The output is enabled at power-on; the driver never changes that on its own.
type Clock struct {
	h *Handle
}

// NewClock returns the CLKOUT control of the chip reached through src. Pass the *Device to share its connection, or
// Bus(i2c) to open a new one.
func NewClock(src Source) *Clock {
	return &Clock{h: src.handle()}
}

func (c *Clock) Enabled() (bool, error) {
	return c.h.readBit(clockoutEnabledBit)
}

func (c *Clock) SetEnabled(enabled bool) error {
	return c.h.writeBit(clockoutEnabledBit, enabled)
}

func (c *Clock) Frequency() (ClockoutFrequency, error) {
	v, err := c.h.readBits(clockoutFreqBits)
	return ClockoutFrequency(v), err
}

func (c *Clock) SetFrequency(f ClockoutFrequency) error {
	if f > ClockoutFreq1Hz {
		return invalidArgument("clockout frequency %d", uint8(f))
	}
	return c.h.writeBits(clockoutFreqBits, uint8(f))
}

func (c *Clock) Config() (ClockoutConfig, error) {
	enabled, err := c.Enabled()
	if err != nil {
		return ClockoutConfig{}, err
	}
	f, err := c.Frequency()
	if err != nil {
		return ClockoutConfig{}, err
	}
	return ClockoutConfig{Enabled: enabled, Frequency: f}, nil
}

// Configure sets the frequency first so the pin never toggles at a rate it was not asked for.
func (c *Clock) Configure(cfg ClockoutConfig) error {
	err := c.SetFrequency(cfg.Frequency)
	if err != nil {
		return err
	}
	return c.SetEnabled(cfg.Enabled)
}
