// Package periphbus runs the drivers in this repository on Linux hosts by adapting a periph.io I2C bus to the
// drivers.I2C interface.
package periphbus

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Bus implements drivers.I2C. Register accesses are sent as a single combined transaction, so periph's own bus lock
// keeps other users from interleaving.
type Bus struct {
	bus    i2c.Bus
	closer i2c.BusCloser
}

// New wraps an already opened bus. The caller keeps ownership of it.
func New(bus i2c.Bus) *Bus {
	return &Bus{bus: bus}
}

// Open initializes the host drivers and opens the named bus, e.g. "/dev/i2c-1" or "1". An empty name opens the first
// bus found.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	bc, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open bus %q: %w", name, err)
	}
	return &Bus{bus: bc, closer: bc}, nil
}

// Close releases the bus if it was opened by Open.
func (b *Bus) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

func (b *Bus) SetSpeed(f physic.Frequency) error {
	return b.bus.SetSpeed(f)
}

func (b *Bus) String() string {
	return b.bus.String()
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

// ReadRegister writes the register address and reads len(buf) bytes back with a repeated start.
func (b *Bus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.bus.Tx(uint16(addr), []byte{r}, buf)
}

func (b *Bus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = r
	copy(w[1:], buf)
	return b.bus.Tx(uint16(addr), w, nil)
}
