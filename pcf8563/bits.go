package pcf8563

// field is a span of bits inside a single register. shift+width never exceeds 8.
type field struct {
	reg   uint8
	shift uint8
	width uint8
}

func (f field) mask() uint8 {
	return uint8((uint16(1)<<f.width - 1) << f.shift)
}

func (h *Handle) readBits(f field) (uint8, error) {
	buf := [1]byte{}
	err := h.read(f.reg, buf[:])
	if err != nil {
		return 0, err
	}
	return (buf[0] & f.mask()) >> f.shift, nil
}

// writeBits replaces the bits of f with v and leaves the rest of the register as it was read.
func (h *Handle) writeBits(f field, v uint8) error {
	if int(v) >= 1<<f.width {
		return invalidArgument("%d does not fit in %d bits", v, f.width)
	}
	buf := [1]byte{}
	err := h.read(f.reg, buf[:])
	if err != nil {
		return err
	}
	buf[0] = buf[0]&^f.mask() | v<<f.shift
	return h.write(f.reg, buf[:])
}

func (h *Handle) readBit(f field) (bool, error) {
	v, err := h.readBits(f)
	return v != 0, err
}

func (h *Handle) writeBit(f field, set bool) error {
	var v uint8
	if set {
		v = 1
	}
	return h.writeBits(f, v)
}
