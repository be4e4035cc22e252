package pcf8563

// bcdField describes a packed BCD value held in one register.
type bcdField struct {
	name     string
	reg      uint8
	mask     uint8
	min, max int
}

// decode masks raw and converts it, rejecting bad digits and values outside the field's range.
func (f bcdField) decode(raw uint8) (int, error) {
	v, ok := bcdToDec(raw, f.mask)
	if !ok || v < f.min || v > f.max {
		return 0, &DecodeError{Field: f.name, Register: f.reg, Raw: raw}
	}
	return v, nil
}

func (f bcdField) encode(v int) (uint8, error) {
	if v < f.min || v > f.max {
		return 0, invalidArgument("%s %d outside %d-%d", f.name, v, f.min, f.max)
	}
	return decToBcd(v, f.mask), nil
}

// decToBcd converts 0-99 to packed BCD, keeping only the bits in mask.
func decToBcd(dec int, mask uint8) uint8 {
	return uint8((dec/10)<<4|dec%10) & mask
}

// bcdToDec converts masked packed BCD to an int. ok is false when either nibble is not a decimal digit.
func bcdToDec(bcd uint8, mask uint8) (dec int, ok bool) {
	bcd &= mask
	hi, lo := bcd>>4, bcd&0x0F
	if hi > 9 || lo > 9 {
		return 0, false
	}
	return int(hi)*10 + int(lo), true
}
