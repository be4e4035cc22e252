package tester

import (
	"fmt"
)

// I2CDevice is a fake device that can be attached to an I2CBus.
type I2CDevice interface {
	Addr() uint8
	ReadRegister(r uint8, buf []byte) error
	WriteRegister(r uint8, buf []byte) error
	Tx(w, r []byte) error
}

// Op is one transaction seen by an I2CBus.
type Op struct {
	Addr     uint8
	Write    bool
	Register uint8
	Data     []byte
	Err      error
}

func (op Op) String() string {
	dir := "read"
	if op.Write {
		dir = "write"
	}
	return fmt.Sprintf("%s 0x%02X@0x%02X % X", dir, op.Addr, op.Register, op.Data)
}

// I2CBus implements the drivers.I2C interface on top of fake devices.
type I2CBus struct {
	c       Failer
	devices []I2CDevice

	// Ops lists every transaction in order, including failed ones.
	Ops []Op

	// Fail is consulted before each transaction. A non-nil result is returned to the driver and the device is not
	// touched, as if the chip did not acknowledge.
	Fail func(op Op) error
}

func NewI2CBus(c Failer) *I2CBus {
	return &I2CBus{c: c}
}

func (bus *I2CBus) AddDevice(d I2CDevice) {
	bus.devices = append(bus.devices, d)
}

// Reset forgets the recorded transactions.
func (bus *I2CBus) Reset() {
	bus.Ops = nil
}

// Writes returns the recorded write transactions.
func (bus *I2CBus) Writes() []Op {
	var ops []Op
	for _, op := range bus.Ops {
		if op.Write {
			ops = append(ops, op)
		}
	}
	return ops
}

func (bus *I2CBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	op := Op{Addr: addr, Register: r}
	err := bus.begin(&op)
	if err == nil {
		err = bus.FindDevice(addr).ReadRegister(r, buf)
		op.Data = append([]byte(nil), buf...)
	}
	op.Err = err
	bus.Ops = append(bus.Ops, op)
	return err
}

func (bus *I2CBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	op := Op{Addr: addr, Write: true, Register: r, Data: append([]byte(nil), buf...)}
	err := bus.begin(&op)
	if err == nil {
		err = bus.FindDevice(addr).WriteRegister(r, buf)
	}
	op.Err = err
	bus.Ops = append(bus.Ops, op)
	return err
}

// Tx is recorded as a write when w carries data after the register address, and as a read otherwise.
func (bus *I2CBus) Tx(addr uint16, w, r []byte) error {
	op := Op{Addr: uint8(addr), Write: len(w) > 1}
	if len(w) > 0 {
		op.Register = w[0]
	}
	if op.Write {
		op.Data = append([]byte(nil), w[1:]...)
	}
	err := bus.begin(&op)
	if err == nil {
		err = bus.FindDevice(uint8(addr)).Tx(w, r)
		if !op.Write {
			op.Data = append([]byte(nil), r...)
		}
	}
	op.Err = err
	bus.Ops = append(bus.Ops, op)
	return err
}

func (bus *I2CBus) begin(op *Op) error {
	if bus.Fail == nil {
		return nil
	}
	return bus.Fail(*op)
}

// FindDevice returns the device with the given address, failing the test if there is none.
func (bus *I2CBus) FindDevice(addr uint8) I2CDevice {
	for _, d := range bus.devices {
		if d.Addr() == addr {
			return d
		}
	}
	bus.c.Helper()
	bus.c.Fatalf("invalid device addr %#x passed to i2c bus", addr)
	panic("unreachable")
}
