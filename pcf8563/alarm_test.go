package pcf8563

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"pgregory.net/rapid"
)

func TestAlarmRoundTrip(t *testing.T) {
	c := qt.New(t)
	dev, bus, fake := newTestDevice(c)

	a := Alarm{Minute: Match(30), Day: Match(15)}
	err := dev.SetAlarm(a)
	c.Assert(err, qt.IsNil)
	c.Assert(fake.Registers[MinuteAlarm:WeekdayAlarm+1], qt.DeepEquals, []byte{0x30, 0x80, 0x15, 0x80})
	c.Assert(bus.Writes(), qt.HasLen, 1)

	got, err := dev.ReadAlarm()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, a)
	c.Assert(got.String(), qt.Equals, "minute=30 hour=* day=15 weekday=*")
}

func TestAlarmDisabledIgnoresPayload(t *testing.T) {
	c := qt.New(t)
	dev, _, fake := newTestDevice(c)

	copy(fake.Registers[MinuteAlarm:], []byte{0xFF, 0x8F, 0x80 | 0x3A, 0x87})
	got, err := dev.ReadAlarm()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, Alarm{})
	c.Assert(got.Armed(), qt.IsFalse)
}

func TestAlarmDisabledRoundTrip(t *testing.T) {
	c := qt.New(t)
	dev, _, _ := newTestDevice(c)

	rapid.Check(t, func(t *rapid.T) {
		a := Alarm{
			Minute:  AlarmField{Value: rapid.Int().Draw(t, "minute payload")},
			Hour:    AlarmField{Value: rapid.IntRange(0, 23).Draw(t, "hour"), Enabled: rapid.Bool().Draw(t, "hour enabled")},
			Day:     AlarmField{Value: rapid.Int().Draw(t, "day payload")},
			Weekday: AlarmField{Value: rapid.IntRange(0, 6).Draw(t, "weekday"), Enabled: rapid.Bool().Draw(t, "weekday enabled")},
		}
		if err := dev.SetAlarm(a); err != nil {
			t.Fatalf("set %v: %v", a, err)
		}
		got, err := dev.ReadAlarm()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.Minute.Enabled || got.Day.Enabled {
			t.Fatalf("disabled field came back enabled: %v", got)
		}
		if got.Hour.Enabled != a.Hour.Enabled || got.Weekday.Enabled != a.Weekday.Enabled {
			t.Fatalf("wrote %v read %v", a, got)
		}
		if a.Hour.Enabled && got.Hour.Value != a.Hour.Value {
			t.Fatalf("wrote %v read %v", a, got)
		}
	})
}

func TestAlarmInvalid(t *testing.T) {
	c := qt.New(t)
	dev, bus, fake := newTestDevice(c)

	for _, a := range []Alarm{
		{Minute: Match(60)},
		{Hour: Match(24)},
		{Day: Match(0)},
		{Weekday: Match(7)},
	} {
		err := dev.SetAlarm(a)
		c.Assert(err, qt.ErrorIs, ErrInvalidArgument, qt.Commentf("%v", a))
	}
	c.Assert(bus.Ops, qt.HasLen, 0)

	fake.Registers[MinuteAlarm] = 0x5A
	_, err := dev.ReadAlarm()
	c.Assert(err, qt.ErrorIs, ErrDecode)
}

func TestAlarmArmed(t *testing.T) {
	c := qt.New(t)
	c.Assert(Alarm{}.Armed(), qt.IsFalse)
	c.Assert(Alarm{Weekday: Match(0)}.Armed(), qt.IsTrue)
	c.Assert(Alarm{Hour: AlarmField{Value: 7}}.Armed(), qt.IsFalse)
}

func TestAlarmStatusAndInterrupt(t *testing.T) {
	c := qt.New(t)
	dev, _, fake := newTestDevice(c)

	// alarm and timer both fired, timer interrupt enabled
	fake.Registers[Control2] = 0b0000_1101
	status, err := dev.AlarmStatus()
	c.Assert(err, qt.IsNil)
	c.Assert(status, qt.IsTrue)

	err = dev.SetAlarmStatus(false)
	c.Assert(err, qt.IsNil)
	status, err = dev.AlarmStatus()
	c.Assert(err, qt.IsNil)
	c.Assert(status, qt.IsFalse)
	c.Assert(fake.Registers[Control2], qt.Equals, uint8(0b0000_0101))

	err = dev.SetAlarmInterrupt(true)
	c.Assert(err, qt.IsNil)
	c.Assert(fake.Registers[Control2], qt.Equals, uint8(0b0000_0111))
	irq, err := dev.AlarmInterrupt()
	c.Assert(err, qt.IsNil)
	c.Assert(irq, qt.IsTrue)
}
