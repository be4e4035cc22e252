package pcf8563

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"pgregory.net/rapid"
)

func TestBCDRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 99).Draw(t, "n")
		got, ok := bcdToDec(decToBcd(n, 0xFF), 0xFF)
		if !ok || got != n {
			t.Fatalf("round trip of %d gave %d (ok=%v)", n, got, ok)
		}
	})
}

func TestBCDEncode(t *testing.T) {
	c := qt.New(t)
	c.Assert(decToBcd(0, 0xFF), qt.Equals, uint8(0x00))
	c.Assert(decToBcd(9, 0xFF), qt.Equals, uint8(0x09))
	c.Assert(decToBcd(10, 0xFF), qt.Equals, uint8(0x10))
	c.Assert(decToBcd(59, 0x7F), qt.Equals, uint8(0x59))
	c.Assert(decToBcd(99, 0xFF), qt.Equals, uint8(0x99))
}

func TestMonthDecode(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		raw  uint8
		want int
	}{
		{0b0000_0001, 1},
		{0b0001_0010, 12},
		{0b1000_1001, 9}, // century bit belongs to the year
	} {
		got, err := monthsField.decode(test.raw)
		c.Assert(err, qt.IsNil, qt.Commentf("raw %08b", test.raw))
		c.Assert(got, qt.Equals, test.want)
	}

	for _, raw := range []uint8{0b0010_0001, 0x13, 0x19, 0x39, 0x00, 0x0A} {
		_, err := monthsField.decode(raw)
		var decodeErr *DecodeError
		c.Assert(errors.As(err, &decodeErr), qt.IsTrue, qt.Commentf("raw %08b", raw))
		c.Assert(decodeErr.Register, qt.Equals, uint8(CenturyMonths))
		c.Assert(decodeErr.Raw, qt.Equals, raw)
		c.Assert(err, qt.ErrorIs, ErrDecode)
	}
}

func TestFieldDecodeRejectsBadDigits(t *testing.T) {
	c := qt.New(t)
	_, err := secondsField.decode(0x5A)
	c.Assert(err, qt.ErrorIs, ErrDecode)
	_, err = hoursField.decode(0x24)
	c.Assert(err, qt.ErrorIs, ErrDecode)
	_, err = daysField.decode(0x00)
	c.Assert(err, qt.ErrorIs, ErrDecode)
	_, err = yearsField.decode(0xA0)
	c.Assert(err, qt.ErrorIs, ErrDecode)

	v, err := secondsField.decode(0x80 | 0x59)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, 59)
}

func TestFieldEncodeRange(t *testing.T) {
	c := qt.New(t)
	_, err := monthsField.encode(0)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)
	_, err = monthsField.encode(13)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)
	_, err = minutesField.encode(-1)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)

	b, err := monthsField.encode(12)
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.Equals, uint8(0x12))
}

func TestFieldRoundTrip(t *testing.T) {
	fields := []bcdField{
		secondsField, minutesField, hoursField, daysField, weekdayField, monthsField, yearsField,
		minuteAlarmField, hourAlarmField, dayAlarmField, weekdayAlarmField,
	}
	rapid.Check(t, func(t *rapid.T) {
		f := rapid.SampledFrom(fields).Draw(t, "field")
		v := rapid.IntRange(f.min, f.max).Draw(t, "v")
		b, err := f.encode(v)
		if err != nil {
			t.Fatalf("encode %s %d: %v", f.name, v, err)
		}
		got, err := f.decode(b)
		if err != nil || got != v {
			t.Fatalf("%s: %d encoded as %#x decoded as %d (%v)", f.name, v, b, got, err)
		}
	})
}
