package pcf8563

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"periph.io/x/conn/v3/physic"
)

func TestClockPowerOnDefault(t *testing.T) {
	c := qt.New(t)
	dev, _, fake := newTestDevice(c)
	clk := NewClock(dev)

	fake.Registers[ClkOutControl] = 0x80
	cfg, err := clk.Config()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.Equals, ClockoutConfig{Enabled: true, Frequency: ClockoutFreq32768Hz})
}

func TestClockConfigure(t *testing.T) {
	c := qt.New(t)
	dev, bus, fake := newTestDevice(c)
	clk := NewClock(dev)

	fake.Registers[ClkOutControl] = 0x80
	err := clk.Configure(ClockoutConfig{Enabled: false, Frequency: ClockoutFreq1Hz})
	c.Assert(err, qt.IsNil)
	c.Assert(fake.Registers[ClkOutControl], qt.Equals, uint8(0x03))

	err = clk.SetFrequency(ClockoutFreq1024Hz)
	c.Assert(err, qt.IsNil)
	f, err := clk.Frequency()
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, ClockoutFreq1024Hz)

	bus.Reset()
	err = clk.SetFrequency(4)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)
	err = clk.Configure(ClockoutConfig{Frequency: 5})
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)
	c.Assert(bus.Ops, qt.HasLen, 0)
}

func TestClockStandalone(t *testing.T) {
	c := qt.New(t)
	dev, bus, fake := newTestDevice(c)

	fake.Registers[ClkOutControl] = 0x80 | byte(ClockoutFreq32Hz)
	for _, clk := range []*Clock{NewClock(dev), NewClock(Bus(bus))} {
		cfg, err := clk.Config()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.Equals, ClockoutConfig{Enabled: true, Frequency: ClockoutFreq32Hz})
	}
}

func TestClockoutFrequency(t *testing.T) {
	c := qt.New(t)
	c.Assert(ClockoutFreq32768Hz.Frequency(), qt.Equals, 32768*physic.Hertz)
	c.Assert(ClockoutFreq1024Hz.Frequency(), qt.Equals, 1024*physic.Hertz)
	c.Assert(ClockoutFreq32Hz.Frequency(), qt.Equals, 32*physic.Hertz)
	c.Assert(ClockoutFreq1Hz.Frequency(), qt.Equals, physic.Hertz)
	c.Assert(ClockoutFreq1024Hz.String(), qt.Equals, "1024Hz")
}
