package tester

// I2CDevice8 is a fake device with 8-bit register addresses that auto-increment during burst transfers.
type I2CDevice8 struct {
	c    Failer
	addr uint8

	// Registers holds the device state. Tests set it directly to model the chip changing bits on its own.
	Registers [256]uint8
}

func NewI2CDevice8(c Failer, addr uint8) *I2CDevice8 {
	return &I2CDevice8{
		c:    c,
		addr: addr,
	}
}

func (d *I2CDevice8) Addr() uint8 {
	return d.addr
}

func (d *I2CDevice8) ReadRegister(r uint8, buf []byte) error {
	d.assertRange(r, len(buf))
	copy(buf, d.Registers[r:])
	return nil
}

func (d *I2CDevice8) WriteRegister(r uint8, buf []byte) error {
	d.assertRange(r, len(buf))
	copy(d.Registers[r:], buf)
	return nil
}

// Tx treats w[0] as the register address, the rest of w as data to write there, and then fills rx from the same
// address.
func (d *I2CDevice8) Tx(w, rx []byte) error {
	if len(w) == 0 {
		d.c.Helper()
		d.c.Fatalf("i2c device 0x%02X: transaction without register address", d.addr)
	}
	r := w[0]
	if len(w) > 1 {
		if err := d.WriteRegister(r, w[1:]); err != nil {
			return err
		}
	}
	if len(rx) > 0 {
		return d.ReadRegister(r, rx)
	}
	return nil
}

func (d *I2CDevice8) assertRange(r uint8, n int) {
	if int(r)+n > len(d.Registers) {
		d.c.Helper()
		d.c.Fatalf("i2c device 0x%02X: register range 0x%02X+%d out of bounds", d.addr, r, n)
	}
}
