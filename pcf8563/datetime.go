package pcf8563

import "time"

// The years register holds two digits. The century bit adds 100; the chip toggles it when the years register rolls
// over from 99 to 00.
const (
	baseYear = 2000
	maxYear  = baseYear + 199
)

// DateTime is the calendar time as stored by the chip. The chip has no sub-second resolution.
//
// Weekday is kept separately from the date: the chip only increments it, so it is whatever was last written.
type DateTime struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
	Hour    int
	Minute  int
	Second  int
}

// DateTimeOf returns the calendar fields of t in t's location. Nanoseconds are dropped.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

// Time returns dt as a time.Time in loc. The stored weekday is ignored.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, loc)
}

func (h *Handle) readDateTime() (DateTime, error) {
	buf := [timeLen]byte{}
	err := h.read(Seconds, buf[:])
	if err != nil {
		return DateTime{}, err
	}

	var dt DateTime
	var month, weekday, year int
	for _, f := range []struct {
		field bcdField
		dst   *int
	}{
		{secondsField, &dt.Second},
		{minutesField, &dt.Minute},
		{hoursField, &dt.Hour},
		{daysField, &dt.Day},
		{weekdayField, &weekday},
		{monthsField, &month},
		{yearsField, &year},
	} {
		*f.dst, err = f.field.decode(buf[f.field.reg-Seconds])
		if err != nil {
			return DateTime{}, err
		}
	}

	dt.Month = time.Month(month)
	dt.Weekday = time.Weekday(weekday)
	dt.Year = baseYear + year
	if buf[CenturyMonths-Seconds]&centuryBit.mask() != 0 {
		dt.Year += 100
	}
	return dt, nil
}

// encodeDateTime validates every field before anything is put on the bus.
func encodeDateTime(dt DateTime) ([timeLen]byte, error) {
	buf := [timeLen]byte{}
	if dt.Year < baseYear || dt.Year > maxYear {
		return buf, invalidArgument("year %d outside %d-%d", dt.Year, baseYear, maxYear)
	}
	year := dt.Year - baseYear
	century := year >= 100
	if century {
		year -= 100
	}

	for _, f := range []struct {
		field bcdField
		v     int
	}{
		{secondsField, dt.Second},
		{minutesField, dt.Minute},
		{hoursField, dt.Hour},
		{daysField, dt.Day},
		{weekdayField, int(dt.Weekday)},
		{monthsField, int(dt.Month)},
		{yearsField, year},
	} {
		b, err := f.field.encode(f.v)
		if err != nil {
			return buf, err
		}
		buf[f.field.reg-Seconds] = b
	}

	if century {
		buf[CenturyMonths-Seconds] |= centuryBit.mask()
	}
	return buf, nil
}

// writeDateTime writes all seven registers in one transfer and only then clears VL, so a failure in between leaves the
// flag reporting the clock as untrustworthy.
func (h *Handle) writeDateTime(dt DateTime) error {
	buf, err := encodeDateTime(dt)
	if err != nil {
		return err
	}
	err = h.write(Seconds, buf[:])
	if err != nil {
		return err
	}
	return h.writeBit(integrityBit, false)
}
