package opra

import (
	"fmt"
	"time"
)

// Wire sizes fixed by the protocol definition.
const (
	BlockHeaderSize   = 21
	MessageHeaderSize = 12
)

// Block is one decoded feed unit: a fixed header and the messages it
// declared. All fields are copied out of the input buffer; the Block holds
// no references into it.
type Block struct {
	Version        uint8
	Size           uint16 // declared block size from the header
	DataFeed       byte
	Retransmission byte
	Session        byte
	SequenceNumber uint32
	MessageCount   uint8 // declared count from the header
	Seconds        uint32
	Nanos          uint32
	Checksum       uint16 // carried through, not verified

	Messages []Message

	// Pad reports whether a trailing pad byte was consumed. The protocol
	// pads blocks whose content ends on an odd offset.
	Pad bool

	// Consumed is the total byte count the decoder walked, pad included.
	Consumed int
}

// Timestamp converts the seconds+nanoseconds header field.
func (b *Block) Timestamp() time.Time {
	return time.Unix(int64(b.Seconds), int64(b.Nanos)).UTC()
}

// Retransmitted reports whether the block was flagged as a retransmission.
func (b *Block) Retransmitted() bool { return b.Retransmission == 'V' }

// ExtendedSession reports the pre-market extended session flag.
func (b *Block) ExtendedSession() bool { return b.Session == 'X' }

// DecodeBlock decodes one feed block from buf.
//
// The returned error is non-nil only when a fixed-width field ran past the
// end of the buffer (errors.Is(err, ErrTruncated)); even then the Block
// holds every message decoded before the failure. All other findings —
// an unknown message category, a length that does not reconcile, unknown
// enumerated values — are reported as anomalies next to a best-effort
// result. Decoding is stateless: the same buffer always yields the same
// result, and concurrent calls on independent buffers need no coordination.
func DecodeBlock(buf []byte) (*Block, []Anomaly, error) {
	cur := &cursor{buf: buf}
	blk := &Block{}
	var anomalies []Anomaly

	if err := decodeBlockHeader(cur, blk); err != nil {
		blk.Consumed = cur.off
		return blk, anomalies, err
	}

	terminated := false
	for i := 0; i < int(blk.MessageCount) && !terminated; i++ {
		msgStart := cur.off

		msg, err := decodeMessageHeader(cur)
		if err != nil {
			blk.Consumed = cur.off
			return blk, anomalies, err
		}

		if !msg.Category.Decodable() {
			// The message length is category-determined, so there is no way
			// to resynchronize past an unknown category.
			anomalies = append(anomalies, Anomaly{
				Kind:         AnomalyUnknownCategory,
				Offset:       msgStart + 1,
				MessageIndex: i,
				Detail:       fmt.Sprintf("category %q has no defined layout, block decoding stopped", byte(msg.Category)),
			})
			terminated = true
			break
		}

		if !msg.Category.IsQuote() && msg.Indicator != ' ' {
			anomalies = append(anomalies, Anomaly{
				Kind:         AnomalyUnexpectedIndicator,
				Offset:       msgStart + 3,
				MessageIndex: i,
				Detail:       fmt.Sprintf("indicator %q on category %q, expected ' '", msg.Indicator, byte(msg.Category)),
			})
		}

		if err := decodePayload(cur, &msg); err != nil {
			blk.Consumed = cur.off
			return blk, anomalies, err
		}

		anomalies = append(anomalies, denomAnomalies(i, msgStart, msg)...)
		blk.Messages = append(blk.Messages, msg)
	}

	if cur.off%2 == 1 && cur.remaining() > 0 {
		_ = cur.skip(1)
		blk.Pad = true
	}

	blk.Consumed = cur.off

	if cur.off != len(buf) {
		anomalies = append(anomalies, Anomaly{
			Kind:         AnomalyLengthMismatch,
			Offset:       cur.off,
			MessageIndex: -1,
			Detail:       fmt.Sprintf("consumed %d of %d available bytes", cur.off, len(buf)),
		})
	}
	if int(blk.Size) != cur.off {
		anomalies = append(anomalies, Anomaly{
			Kind:         AnomalyLengthMismatch,
			Offset:       cur.off,
			MessageIndex: -1,
			Detail:       fmt.Sprintf("declared block size %d, consumed %d bytes", blk.Size, cur.off),
		})
	}

	return blk, anomalies, nil
}

func decodeBlockHeader(cur *cursor, blk *Block) error {
	if err := cur.need(BlockHeaderSize); err != nil {
		return err
	}

	blk.Version, _ = cur.u8()
	blk.Size, _ = cur.u16()
	blk.DataFeed, _ = cur.u8()
	blk.Retransmission, _ = cur.u8()
	blk.Session, _ = cur.u8()
	blk.SequenceNumber, _ = cur.u32()
	blk.MessageCount, _ = cur.u8()
	blk.Seconds, _ = cur.u32()
	blk.Nanos, _ = cur.u32()
	blk.Checksum, _ = cur.u16()

	return nil
}

// decodeMessageHeader consumes the fixed 12-byte header common to every
// message. The caller bounds-checks availability; given 12 bytes this
// cannot fail.
func decodeMessageHeader(cur *cursor) (Message, error) {
	var m Message

	if err := cur.need(MessageHeaderSize); err != nil {
		return m, err
	}

	m.Participant, _ = cur.u8()
	cat, _ := cur.u8()
	m.Category = Category(cat)
	m.Type, _ = cur.u8()
	m.Indicator, _ = cur.u8()
	m.TransactionID, _ = cur.u32()
	m.ReferenceNumber, _ = cur.u32()

	return m, nil
}

// decodePayload dispatches on the message category and fills in the
// payload variant, including any quote appendages. It is never called for
// categories without a defined layout.
func decodePayload(cur *cursor, msg *Message) error {
	switch msg.Category {
	case CategoryAdministrative:
		p, err := decodeAdministrative(cur)
		if err != nil {
			return err
		}
		msg.Payload = p

	case CategoryLastSale:
		p, err := decodeLastSale(cur)
		if err != nil {
			return err
		}
		msg.Payload = p

	case CategoryOpenInterest:
		p, err := decodeOpenInterest(cur)
		if err != nil {
			return err
		}
		msg.Payload = p

	case CategoryLongQuote:
		p, err := decodeLongQuote(cur)
		if err != nil {
			return err
		}
		p.Bid, p.Offer, err = decodeAppendages(cur, msg.Indicator)
		if err != nil {
			return err
		}
		msg.Payload = p

	case CategoryShortQuote:
		p, err := decodeShortQuote(cur)
		if err != nil {
			return err
		}
		p.Bid, p.Offer, err = decodeAppendages(cur, msg.Indicator)
		if err != nil {
			return err
		}
		msg.Payload = p

	case CategoryControl:
		msg.Payload = Control{}

	case CategoryUnderlyingValue:
		msg.Payload = UnderlyingValue{}
	}

	return nil
}

// denomAnomalies reports every undefined denominator code carried by the
// message. The raw codes stay on the payload either way.
func denomAnomalies(index, msgStart int, msg Message) []Anomaly {
	var out []Anomaly
	add := func(field string, code DenomCode) {
		if code.Valid() {
			return
		}
		out = append(out, Anomaly{
			Kind:         AnomalyUnknownDenomCode,
			Offset:       msgStart,
			MessageIndex: index,
			Detail:       fmt.Sprintf("%s denominator code %q is not defined", field, byte(code)),
		})
	}

	switch p := msg.Payload.(type) {
	case LastSale:
		add("strike", p.Strike.Denom)
		add("premium", p.Premium.Denom)
	case OpenInterest:
		add("strike", p.StrikeDenom)
	case LongQuote:
		add("strike", p.StrikeDenom)
		add("premium", p.PremiumDenom)
		if p.Bid != nil {
			add("bid appendage", p.Bid.Denom)
		}
		if p.Offer != nil {
			add("offer appendage", p.Offer.Denom)
		}
	case ShortQuote:
		if p.Bid != nil {
			add("bid appendage", p.Bid.Denom)
		}
		if p.Offer != nil {
			add("offer appendage", p.Offer.Denom)
		}
	}

	return out
}
