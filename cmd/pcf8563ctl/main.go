// Command pcf8563ctl reads and programs a PCF8563 real-time clock attached to a Linux I2C bus.
//
// With arguments it runs a single command, e.g.
//
//	pcf8563ctl -bus /dev/i2c-1 set now
//	pcf8563ctl timer set enabled=on freq=1hz value=60
//
// Without arguments it starts an interactive shell. Type "help" for the command list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ajanata/drivers/pcf8563"
	"github.com/ajanata/drivers/periphbus"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	busName := flag.String("bus", "", "I2C bus to open (overrides config)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *busName != "" {
		cfg.Bus.Name = *busName
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	bus, err := periphbus.Open(cfg.Bus.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open i2c bus")
	}
	defer bus.Close()
	log.Debug().Str("bus", bus.String()).Msg("opened i2c bus")

	r := newRTC(pcf8563.New(bus), os.Stdout)

	lost, err := r.dev.LostPower()
	if err != nil {
		log.Error().Err(err).Msg("rtc not responding")
	} else if lost {
		log.Warn().Msg("rtc lost power, time is not valid until set")
	}

	if flag.NArg() > 0 {
		err = r.exec(flag.Args())
		if err != nil && !errors.Is(err, errExit) {
			bus.Close()
			log.Fatal().Err(err).Msg("command failed")
		}
		return
	}

	err = shell(r, cfg.Shell.HistoryFile)
	if err != nil {
		log.Error().Err(err).Msg("shell failed")
	}
}

func shell(r *rtc, historyFile string) error {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for name := range commands {
		items = append(items, readline.PcItem(name))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pcf8563> ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "exit",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		err = runLine(r, line)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("command failed")
		}
	}
}

func runLine(r *rtc, line string) error {
	args, err := shlex.Split(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return r.exec(args)
}
