package opra

// AnomalyKind classifies an advisory decode finding.
type AnomalyKind uint8

const (
	anomalyKindUnknown AnomalyKind = iota

	// AnomalyUnknownCategory: a message carried a category with no defined
	// layout. Message lengths are category-determined, so decoding stopped
	// at that message; everything decoded before it remains valid.
	AnomalyUnknownCategory

	// AnomalyLengthMismatch: the bytes consumed disagree with the bytes
	// available or with the declared block size.
	AnomalyLengthMismatch

	// AnomalyUnknownDenomCode: a price field carried a denominator code the
	// protocol does not define. The raw value is preserved on the message.
	AnomalyUnknownDenomCode

	// AnomalyUnexpectedIndicator: a non-quote message carried an indicator
	// other than the ' ' sentinel.
	AnomalyUnexpectedIndicator
)

func (k AnomalyKind) String() string {
	switch k {
	case AnomalyUnknownCategory:
		return "unknown category"
	case AnomalyLengthMismatch:
		return "length mismatch"
	case AnomalyUnknownDenomCode:
		return "unknown denominator code"
	case AnomalyUnexpectedIndicator:
		return "unexpected indicator"
	}
	return "unknown"
}

// Anomaly is an advisory finding attached to a decode result. Anomalies
// never invalidate the messages already decoded.
type Anomaly struct {
	Kind AnomalyKind

	// Offset is the buffer position the finding refers to.
	Offset int

	// MessageIndex is the zero-based ordinal of the message within the
	// block the finding belongs to, or -1 for block-level findings. A
	// message that terminated decoding is not present in Block.Messages.
	MessageIndex int

	Detail string
}
