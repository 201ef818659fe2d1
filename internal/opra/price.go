package opra

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownDenomCode marks a price whose denominator code the protocol
// does not define. The raw value and code are preserved so callers can
// still report the field.
var ErrUnknownDenomCode = errors.New("opra: unknown denominator code")

// Price is a raw unscaled integer paired with the denominator code that
// fixes its implied decimal places. Scaling happens on access, never on
// the wire.
type Price struct {
	Raw   uint64
	Denom DenomCode
}

// Parts splits the raw value into whole and fractional parts such that
// whole*10^places + frac == Raw.
func (p Price) Parts() (whole, frac uint64, places int, err error) {
	div, ok := p.Denom.Divisor()
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrUnknownDenomCode, p.Denom)
	}
	places, _ = p.Denom.DecimalPlaces()
	return p.Raw / div, p.Raw % div, places, nil
}

// AppendString formats the price as a decimal string. A price with an
// unknown denominator code renders its raw value with a marker instead of
// failing.
func (p Price) AppendString(buf []byte) []byte {
	places, ok := p.Denom.DecimalPlaces()
	if !ok {
		buf = strconv.AppendUint(buf, p.Raw, 10)
		buf = append(buf, " (bad denominator code "...)
		buf = strconv.AppendQuoteRune(buf, rune(p.Denom))
		return append(buf, ')')
	}
	return appendScaledUint(buf, p.Raw, places)
}

func (p Price) String() string {
	return string(p.AppendString(nil))
}

func appendScaledUint(buf []byte, value uint64, places int) []byte {
	if places <= 0 {
		return strconv.AppendUint(buf, value, 10)
	}

	var tmp [20]byte
	digits := strconv.AppendUint(tmp[:0], value, 10)

	if len(digits) <= places {
		buf = append(buf, '0', '.')
		for i := 0; i < places-len(digits); i++ {
			buf = append(buf, '0')
		}
		return append(buf, digits...)
	}

	idx := len(digits) - places
	buf = append(buf, digits[:idx]...)
	buf = append(buf, '.')
	return append(buf, digits[idx:]...)
}
