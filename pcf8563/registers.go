package pcf8563

const (
	Address        = 0x51 // I2C address for PCF8563
	Control1       = 0x00 // Control and status register 1
	Control2       = 0x01 // Control and status register 2
	Time           = 0x02 // Time registers starting with seconds, also holds the VL flag
	Seconds        = 0x02
	Minutes        = 0x03
	Hours          = 0x04
	Days           = 0x05
	Weekdays       = 0x06
	CenturyMonths  = 0x07
	Years          = 0x08
	AlarmTime      = 0x09 // Alarm registers starting with minute
	MinuteAlarm    = 0x09
	HourAlarm      = 0x0A
	DayAlarm       = 0x0B
	WeekdayAlarm   = 0x0C
	ClkOutControl  = 0x0D // CLKOUT control register
	TimerControl   = 0x0E // Timer enable and source clock frequency
	TimerCountdown = 0x0F // Timer value (number of source clock periods)
)

// Lengths of the burst transfers.
const (
	timeLen  = Years - Seconds + 1
	alarmLen = WeekdayAlarm - MinuteAlarm + 1
)

// Single bits and bit spans within the control registers.
var (
	stopBit = field{reg: Control1, shift: 5, width: 1}

	timerInterruptBit = field{reg: Control2, shift: 0, width: 1} // TIE
	alarmInterruptBit = field{reg: Control2, shift: 1, width: 1} // AIE
	timerStatusBit    = field{reg: Control2, shift: 2, width: 1} // TF
	alarmStatusBit    = field{reg: Control2, shift: 3, width: 1} // AF
	timerPulsedBit    = field{reg: Control2, shift: 4, width: 1} // TI_TP

	integrityBit = field{reg: Seconds, shift: 7, width: 1} // VL
	centuryBit   = field{reg: CenturyMonths, shift: 7, width: 1}

	clockoutEnabledBit = field{reg: ClkOutControl, shift: 7, width: 1} // FE
	clockoutFreqBits   = field{reg: ClkOutControl, shift: 0, width: 2} // FD

	timerEnabledBit = field{reg: TimerControl, shift: 7, width: 1} // TE
	timerFreqBits   = field{reg: TimerControl, shift: 0, width: 2} // TD
	timerValueBits  = field{reg: TimerCountdown, shift: 0, width: 8}
)

// BCD layouts of the time and alarm registers. Masks strip only the bits that belong to another field (VL, century,
// alarm disable), so a set unused bit shows up as an out-of-range value instead of being silently dropped.
var (
	secondsField = bcdField{name: "seconds", reg: Seconds, mask: 0x7F, min: 0, max: 59}
	minutesField = bcdField{name: "minutes", reg: Minutes, mask: 0xFF, min: 0, max: 59}
	hoursField   = bcdField{name: "hours", reg: Hours, mask: 0xFF, min: 0, max: 23}
	daysField    = bcdField{name: "days", reg: Days, mask: 0xFF, min: 1, max: 31}
	weekdayField = bcdField{name: "weekday", reg: Weekdays, mask: 0xFF, min: 0, max: 6}
	monthsField  = bcdField{name: "month", reg: CenturyMonths, mask: 0x7F, min: 1, max: 12}
	yearsField   = bcdField{name: "year", reg: Years, mask: 0xFF, min: 0, max: 99}

	minuteAlarmField  = bcdField{name: "minute alarm", reg: MinuteAlarm, mask: 0x7F, min: 0, max: 59}
	hourAlarmField    = bcdField{name: "hour alarm", reg: HourAlarm, mask: 0x7F, min: 0, max: 23}
	dayAlarmField     = bcdField{name: "day alarm", reg: DayAlarm, mask: 0x7F, min: 1, max: 31}
	weekdayAlarmField = bcdField{name: "weekday alarm", reg: WeekdayAlarm, mask: 0x7F, min: 0, max: 6}
)

// alarmDisabled is the bit that, when set in any alarm register, excludes that field from matching.
const alarmDisabled = 0b1000_0000
