package pcf8563

import (
	"time"

	"github.com/ajanata/drivers"
)

// StartupDelay is how long the chip needs after power-up before it answers on the bus.
const StartupDelay = 50 * time.Millisecond

// sleep is replaced in tests.
var sleep = time.Sleep

// Handle is a connection to one PCF8563 on a bus. A Device, Timer and Clock built from the same Handle share it; the
// driver adds no locking of its own, so callers using a Handle from several goroutines must serialise access.
type Handle struct {
	bus     drivers.I2C
	Address uint8
}

// Source is what a Timer or Clock is built from: either a raw bus (see Bus), or an existing *Device or *Handle whose
// connection is reused.
type Source interface {
	handle() *Handle
}

type busSource struct {
	bus drivers.I2C
}

// Bus wraps a raw bus as a Source. Each use opens a new Handle and waits StartupDelay.
func Bus(bus drivers.I2C) Source {
	return busSource{bus: bus}
}

func (s busSource) handle() *Handle {
	return open(s.bus)
}

func (h *Handle) handle() *Handle {
	return h
}

func open(bus drivers.I2C) *Handle {
	sleep(StartupDelay)
	return &Handle{
		bus:     bus,
		Address: Address,
	}
}

func (h *Handle) read(reg uint8, buf []byte) error {
	return h.bus.ReadRegister(h.Address, reg, buf)
}

func (h *Handle) write(reg uint8, buf []byte) error {
	return h.bus.WriteRegister(h.Address, reg, buf)
}
