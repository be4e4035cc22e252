package pcf8563

import "fmt"

// AlarmField is one component of an alarm. The zero value is disabled: the field is ignored when matching.
type AlarmField struct {
	Value   int
	Enabled bool
}

// Match returns an enabled AlarmField matching v.
func Match(v int) AlarmField {
	return AlarmField{Value: v, Enabled: true}
}

func (f AlarmField) String() string {
	if !f.Enabled {
		return "*"
	}
	return fmt.Sprint(f.Value)
}

// Alarm fires when every enabled field matches the current time. There is no seconds field: alarms fire at the start
// of a minute. Weekday uses time.Weekday numbering.
//
// An Alarm with every field disabled never fires. It does not mean "every minute"; use the timer for that.
type Alarm struct {
	Minute  AlarmField
	Hour    AlarmField
	Day     AlarmField
	Weekday AlarmField
}

// Armed reports whether at least one field is enabled, i.e. whether the alarm can ever fire.
func (a Alarm) Armed() bool {
	return a.Minute.Enabled || a.Hour.Enabled || a.Day.Enabled || a.Weekday.Enabled
}

func (a Alarm) String() string {
	return fmt.Sprintf("minute=%s hour=%s day=%s weekday=%s", a.Minute, a.Hour, a.Day, a.Weekday)
}

func (a *Alarm) fields() []struct {
	field bcdField
	value *AlarmField
} {
	return []struct {
		field bcdField
		value *AlarmField
	}{
		{minuteAlarmField, &a.Minute},
		{hourAlarmField, &a.Hour},
		{dayAlarmField, &a.Day},
		{weekdayAlarmField, &a.Weekday},
	}
}

func (h *Handle) readAlarm() (Alarm, error) {
	buf := [alarmLen]byte{}
	err := h.read(MinuteAlarm, buf[:])
	if err != nil {
		return Alarm{}, err
	}

	var a Alarm
	for _, f := range a.fields() {
		raw := buf[f.field.reg-MinuteAlarm]
		if raw&alarmDisabled != 0 {
			// payload bits are meaningless once the field is disabled
			continue
		}
		v, err := f.field.decode(raw)
		if err != nil {
			return Alarm{}, err
		}
		*f.value = Match(v)
	}
	return a, nil
}

func (h *Handle) writeAlarm(a Alarm) error {
	buf := [alarmLen]byte{}
	for _, f := range a.fields() {
		i := f.field.reg - MinuteAlarm
		if !f.value.Enabled {
			buf[i] = alarmDisabled
			continue
		}
		b, err := f.field.encode(f.value.Value)
		if err != nil {
			return err
		}
		buf[i] = b
	}
	return h.write(MinuteAlarm, buf[:])
}
