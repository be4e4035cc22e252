// Package pcf8563 implements a driver for the PCF8563 Real-Time Clock (RTC): date and time with power-loss detection,
// the minute-resolution alarm, the countdown timer and the CLKOUT pin.
//
// The timer and CLKOUT pin are reached through Timer and Clock, which can run on their own bus connection or share
// the connection of a Device.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8563.pdf
package pcf8563

import (
	"time"

	"github.com/ajanata/drivers"
)

type Device struct {
	h *Handle
}

// New opens a connection to the PCF8563 on the provided bus. It blocks for StartupDelay so the chip is ready for the
// first access.
func New(i2c drivers.I2C) *Device {
	return &Device{h: open(i2c)}
}

// Handle returns the connection of d, for sharing with NewTimer and NewClock.
func (d *Device) Handle() *Handle {
	return d.h
}

func (d *Device) handle() *Handle {
	return d.h
}

// IntegrityCompromised reports the VL flag: the oscillator stopped or the supply dropped too low since the time was
// last set, so the clock cannot be trusted. Reading does not clear it; only WriteDateTime does.
func (d *Device) IntegrityCompromised() (bool, error) {
	return d.h.readBit(integrityBit)
}

// LostPower is IntegrityCompromised, named as in the PCF8523 driver.
func (d *Device) LostPower() (bool, error) {
	return d.IntegrityCompromised()
}

// ReadDateTime reads all time registers in one transfer.
func (d *Device) ReadDateTime() (DateTime, error) {
	return d.h.readDateTime()
}

// WriteDateTime sets the clock and then clears the VL flag. Years from 2000 through 2199 can be stored.
func (d *Device) WriteDateTime(dt DateTime) error {
	return d.h.writeDateTime(dt)
}

// Now returns the current time as UTC.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.ReadDateTime()
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(time.UTC), nil
}

// Set sets the clock to t converted to UTC.
func (d *Device) Set(t time.Time) error {
	return d.WriteDateTime(DateTimeOf(t.UTC()))
}

func (d *Device) ReadAlarm() (Alarm, error) {
	return d.h.readAlarm()
}

// SetAlarm writes all four alarm registers in one transfer. It does not touch the alarm flag or interrupt enable.
func (d *Device) SetAlarm(a Alarm) error {
	return d.h.writeAlarm(a)
}

// AlarmInterrupt reports whether the INT pin asserts when the alarm matches.
func (d *Device) AlarmInterrupt() (bool, error) {
	return d.h.readBit(alarmInterruptBit)
}

func (d *Device) SetAlarmInterrupt(enabled bool) error {
	return d.h.writeBit(alarmInterruptBit, enabled)
}

// AlarmStatus reports whether the alarm has matched. The flag stays set until cleared with SetAlarmStatus(false).
func (d *Device) AlarmStatus() (bool, error) {
	return d.h.readBit(alarmStatusBit)
}

func (d *Device) SetAlarmStatus(status bool) error {
	return d.h.writeBit(alarmStatusBit, status)
}

// ClockoutEnabled is the same bit as Clock.Enabled.
func (d *Device) ClockoutEnabled() (bool, error) {
	return d.h.readBit(clockoutEnabledBit)
}

func (d *Device) SetClockoutEnabled(enabled bool) error {
	return d.h.writeBit(clockoutEnabledBit, enabled)
}

// Stopped reports whether the STOP bit holds the clock. The prescaler is reset while stopped, so releasing it starts
// the next second exactly.
func (d *Device) Stopped() (bool, error) {
	return d.h.readBit(stopBit)
}

func (d *Device) SetStopped(stopped bool) error {
	return d.h.writeBit(stopBit, stopped)
}
