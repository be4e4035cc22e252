package pcf8563

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a value cannot be represented in the register it is written to. Nothing is
	// sent on the bus when this error is returned.
	ErrInvalidArgument = errors.New("pcf8563: invalid argument")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("pcf8563: invalid register contents")
)

// DecodeError reports a register byte that does not decode to a valid value for its field. This usually means the
// chip has never been set since it lost power, or the bus returned garbage.
type DecodeError struct {
	Field    string
	Register uint8
	Raw      uint8
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pcf8563: invalid %s in register 0x%02X: 0x%02X", e.Field, e.Register, e.Raw)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}
