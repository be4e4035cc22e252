// Package drivers provides the bus interfaces shared by the device drivers in this repository.
package drivers

// I2C represents an I2C bus. It is notably implemented by the machine.I2C type under TinyGo and by periphbus.Bus on
// Linux hosts.
//
// Implementations must perform each call as a single transaction: no other bus user may interleave between the
// register address and the data bytes.
type I2C interface {
	ReadRegister(addr uint8, r uint8, buf []byte) error
	WriteRegister(addr uint8, r uint8, buf []byte) error
	Tx(addr uint16, w, r []byte) error
}
