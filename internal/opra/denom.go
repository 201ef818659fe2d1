package opra

// DenomCode selects the number of implied decimal places for a scaled
// price or size integer. Codes 'A' through 'H' mean one to eight decimal
// places; 'I' means a whole number.
type DenomCode byte

const (
	Denom1 DenomCode = 'A'
	Denom2 DenomCode = 'B'
	Denom3 DenomCode = 'C'
	Denom4 DenomCode = 'D'
	Denom5 DenomCode = 'E'
	Denom6 DenomCode = 'F'
	Denom7 DenomCode = 'G'
	Denom8 DenomCode = 'H'

	// Denom0 is the one code outside the ascending-letter pattern.
	Denom0 DenomCode = 'I'
)

// DecimalPlaces returns the decimal-place count for the code.
// ok is false for codes the protocol does not define.
func (c DenomCode) DecimalPlaces() (places int, ok bool) {
	switch c {
	case Denom1:
		return 1, true
	case Denom2:
		return 2, true
	case Denom3:
		return 3, true
	case Denom4:
		return 4, true
	case Denom5:
		return 5, true
	case Denom6:
		return 6, true
	case Denom7:
		return 7, true
	case Denom8:
		return 8, true
	case Denom0:
		return 0, true
	}
	return 0, false
}

// Divisor returns the power-of-ten divisor implied by the code.
func (c DenomCode) Divisor() (uint64, bool) {
	places, ok := c.DecimalPlaces()
	if !ok {
		return 0, false
	}
	d := uint64(1)
	for i := 0; i < places; i++ {
		d *= 10
	}
	return d, true
}

// Valid reports whether the protocol defines the code.
func (c DenomCode) Valid() bool {
	_, ok := c.DecimalPlaces()
	return ok
}
