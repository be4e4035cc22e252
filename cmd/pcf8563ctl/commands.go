package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ajanata/drivers/pcf8563"
)

var (
	errExit            = errors.New("exit")
	errInvalidArgument = errors.New("invalid argument")
)

// rtc is the state the commands operate on. The timer and clock share the device's connection.
type rtc struct {
	dev   *pcf8563.Device
	timer *pcf8563.Timer
	clock *pcf8563.Clock
	out   io.Writer
	now   func() time.Time
}

func newRTC(dev *pcf8563.Device, out io.Writer) *rtc {
	return &rtc{
		dev:   dev,
		timer: pcf8563.NewTimer(dev),
		clock: pcf8563.NewClock(dev),
		out:   out,
		now:   time.Now,
	}
}

type command struct {
	usage string
	run   func(r *rtc, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"now":      {"now", cmdNow},
		"set":      {"set [now|RFC3339 time]", cmdSet},
		"lost":     {"lost", cmdLost},
		"alarm":    {"alarm [set minute=M hour=H day=D weekday=W | off | ack | irq on|off]", cmdAlarm},
		"timer":    {"timer [set enabled=on|off freq=4096hz|64hz|1hz|1/60hz value=N | ack | irq on|off | pulsed on|off]", cmdTimer},
		"clockout": {"clockout [set enabled=on|off freq=32768hz|1024hz|32hz|1hz]", cmdClockout},
		"stop":     {"stop", func(r *rtc, _ []string) error { return r.dev.SetStopped(true) }},
		"start":    {"start", func(r *rtc, _ []string) error { return r.dev.SetStopped(false) }},
		"help":     {"help", cmdHelp},
		"exit":     {"exit", func(*rtc, []string) error { return errExit }},
	}
}

// findCommand accepts any unambiguous prefix of a command name.
func findCommand(name string) (command, error) {
	cmd, ok := commands[name]
	if ok {
		return cmd, nil
	}

	matches := []string{}
	for k := range commands {
		if strings.HasPrefix(k, name) {
			matches = append(matches, k)
		}
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		return command{}, fmt.Errorf("unknown command: %s", name)
	}
	if len(matches) == 1 {
		return commands[matches[0]], nil
	}
	return command{}, fmt.Errorf("ambiguous command: %s", strings.Join(matches, ", "))
}

func (r *rtc) exec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, err := findCommand(args[0])
	if err != nil {
		return err
	}
	log.Debug().Strs("args", args).Msg("running command")
	return cmd.run(r, args[1:])
}

func cmdHelp(r *rtc, _ []string) error {
	names := make([]string, 0, len(commands))
	for k := range commands {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintln(r.out, commands[k].usage)
	}
	return nil
}

func cmdNow(r *rtc, _ []string) error {
	dt, err := r.dev.ReadDateTime()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s %s\n", dt.Time(time.UTC).Format(time.RFC3339), dt.Weekday)
	return nil
}

func cmdSet(r *rtc, args []string) error {
	t := r.now()
	if len(args) > 1 {
		return errInvalidArgument
	}
	if len(args) == 1 && args[0] != "now" {
		var err error
		t, err = time.Parse(time.RFC3339, args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidArgument, err)
		}
	}
	err := r.dev.Set(t)
	if err != nil {
		return err
	}
	log.Info().Time("time", t.UTC()).Msg("clock set")
	return nil
}

func cmdLost(r *rtc, _ []string) error {
	lost, err := r.dev.LostPower()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "integrity compromised: %s\n", onOff(lost))
	return nil
}

func cmdAlarm(r *rtc, args []string) error {
	if len(args) == 0 {
		return showAlarm(r)
	}
	switch args[0] {
	case "set":
		var a pcf8563.Alarm
		err := parseKeyValues(args[1:], map[string]func(string) error{
			"minute":  alarmFieldSetter(&a.Minute),
			"hour":    alarmFieldSetter(&a.Hour),
			"day":     alarmFieldSetter(&a.Day),
			"weekday": alarmFieldSetter(&a.Weekday),
		})
		if err != nil {
			return err
		}
		if !a.Armed() {
			log.Warn().Msg("alarm has no enabled fields and will never fire")
		}
		return r.dev.SetAlarm(a)
	case "off":
		return r.dev.SetAlarm(pcf8563.Alarm{})
	case "ack":
		return r.dev.SetAlarmStatus(false)
	case "irq":
		on, err := singleOnOff(args[1:])
		if err != nil {
			return err
		}
		return r.dev.SetAlarmInterrupt(on)
	}
	return fmt.Errorf("%w: alarm %s", errInvalidArgument, args[0])
}

func showAlarm(r *rtc) error {
	a, err := r.dev.ReadAlarm()
	if err != nil {
		return err
	}
	status, err := r.dev.AlarmStatus()
	if err != nil {
		return err
	}
	irq, err := r.dev.AlarmInterrupt()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s fired=%s irq=%s\n", a, onOff(status), onOff(irq))
	return nil
}

func cmdTimer(r *rtc, args []string) error {
	if len(args) == 0 {
		return showTimer(r)
	}
	switch args[0] {
	case "set":
		cfg, err := r.timer.Config()
		if err != nil {
			return err
		}
		err = parseKeyValues(args[1:], map[string]func(string) error{
			"enabled": func(s string) (err error) {
				cfg.Enabled, err = parseOnOff(s)
				return err
			},
			"freq": func(s string) (err error) {
				cfg.Frequency, err = parseTimerFrequency(s)
				return err
			},
			"value": func(s string) error {
				v, err := strconv.ParseUint(s, 0, 8)
				if err != nil {
					return fmt.Errorf("%w: value %q", errInvalidArgument, s)
				}
				cfg.Value = uint8(v)
				return nil
			},
		})
		if err != nil {
			return err
		}
		return r.timer.Configure(cfg)
	case "ack":
		return r.timer.SetStatus(false)
	case "irq":
		on, err := singleOnOff(args[1:])
		if err != nil {
			return err
		}
		return r.timer.SetInterrupt(on)
	case "pulsed":
		on, err := singleOnOff(args[1:])
		if err != nil {
			return err
		}
		return r.timer.SetPulsed(on)
	}
	return fmt.Errorf("%w: timer %s", errInvalidArgument, args[0])
}

func showTimer(r *rtc) error {
	cfg, err := r.timer.Config()
	if err != nil {
		return err
	}
	status, err := r.timer.Status()
	if err != nil {
		return err
	}
	irq, err := r.timer.Interrupt()
	if err != nil {
		return err
	}
	pulsed, err := r.timer.Pulsed()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "enabled=%s freq=%s value=%d fired=%s irq=%s pulsed=%s\n",
		onOff(cfg.Enabled), cfg.Frequency, cfg.Value, onOff(status), onOff(irq), onOff(pulsed))
	return nil
}

func cmdClockout(r *rtc, args []string) error {
	if len(args) == 0 {
		cfg, err := r.clock.Config()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "enabled=%s freq=%s\n", onOff(cfg.Enabled), cfg.Frequency)
		return nil
	}
	if args[0] != "set" {
		return fmt.Errorf("%w: clockout %s", errInvalidArgument, args[0])
	}
	cfg, err := r.clock.Config()
	if err != nil {
		return err
	}
	err = parseKeyValues(args[1:], map[string]func(string) error{
		"enabled": func(s string) (err error) {
			cfg.Enabled, err = parseOnOff(s)
			return err
		},
		"freq": func(s string) (err error) {
			cfg.Frequency, err = parseClockoutFrequency(s)
			return err
		},
	})
	if err != nil {
		return err
	}
	return r.clock.Configure(cfg)
}

// parseKeyValues applies each key=value argument through the setter registered for its key.
func parseKeyValues(args []string, setters map[string]func(string) error) error {
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: expected key=value, got %q", errInvalidArgument, arg)
		}
		set, ok := setters[k]
		if !ok {
			return fmt.Errorf("%w: unknown key %q", errInvalidArgument, k)
		}
		if err := set(v); err != nil {
			return err
		}
	}
	return nil
}

func alarmFieldSetter(f *pcf8563.AlarmField) func(string) error {
	return func(s string) error {
		if s == "*" || s == "off" {
			*f = pcf8563.AlarmField{}
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %q", errInvalidArgument, s)
		}
		*f = pcf8563.Match(v)
		return nil
	}
}

func singleOnOff(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("%w: expected on or off", errInvalidArgument)
	}
	return parseOnOff(args[0])
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not on or off", errInvalidArgument, s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseTimerFrequency(s string) (pcf8563.TimerFrequency, error) {
	for _, f := range []pcf8563.TimerFrequency{
		pcf8563.TimerFreq4096Hz, pcf8563.TimerFreq64Hz, pcf8563.TimerFreq1Hz, pcf8563.TimerFreq1_60Hz,
	} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: timer frequency %q", errInvalidArgument, s)
}

func parseClockoutFrequency(s string) (pcf8563.ClockoutFrequency, error) {
	for _, f := range []pcf8563.ClockoutFrequency{
		pcf8563.ClockoutFreq32768Hz, pcf8563.ClockoutFreq1024Hz, pcf8563.ClockoutFreq32Hz, pcf8563.ClockoutFreq1Hz,
	} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: clockout frequency %q", errInvalidArgument, s)
}
