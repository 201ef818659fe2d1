// Package render formats decoded feed blocks into human-readable lines.
//
// # Module
//
// Presentation layer over the decoder. The decoder itself never formats;
// everything here works off the decoded Block and the protocol tables.
//
// # Produce
//
// One line per block header, one per message, one per quote appendage, one
// per anomaly.
package render

import (
	"fmt"

	"main/internal/opra"
)

// Lines renders one block and its decode findings.
func Lines(blk *opra.Block, anomalies []opra.Anomaly) []string {
	out := make([]string, 0, 1+2*len(blk.Messages)+len(anomalies))
	out = append(out, headerLine(blk))
	for i, msg := range blk.Messages {
		out = append(out, messageLines(i, msg)...)
	}
	for _, a := range anomalies {
		out = append(out, anomalyLine(a))
	}
	return out
}

func headerLine(b *opra.Block) string {
	return fmt.Sprintf("block seq=%d version=%d feed=%s retrans=%s session=%s messages=%d size=%d consumed=%d pad=%t time=%s",
		b.SequenceNumber, b.Version,
		describe(b.DataFeed, opra.DataFeedDescription),
		describe(b.Retransmission, opra.RetransmissionDescription),
		describe(b.Session, opra.SessionDescription),
		b.MessageCount, b.Size, b.Consumed, b.Pad,
		b.Timestamp().Format("15:04:05.000000000"))
}

func messageLines(i int, msg opra.Message) []string {
	head := fmt.Sprintf("  msg %d: %s %s [%s] indicator=%s",
		i,
		describe(msg.Participant, opra.ParticipantName),
		categoryText(msg.Category),
		typeText(msg),
		indicatorText(msg))

	lines := []string{head + payloadText(msg.Payload)}

	// Appendages get their own indented lines, bid first.
	if q, ok := msg.Payload.(opra.LongQuote); ok {
		lines = append(lines, appendageLines(q.Bid, q.Offer)...)
	}
	if q, ok := msg.Payload.(opra.ShortQuote); ok {
		lines = append(lines, appendageLines(q.Bid, q.Offer)...)
	}
	return lines
}

func payloadText(p opra.Payload) string {
	switch p := p.(type) {
	case opra.Administrative:
		return fmt.Sprintf(" text=%q", p.Data)
	case opra.LastSale:
		return fmt.Sprintf(" sym=%q strike=%s volume=%d premium=%s trade=%d",
			p.Symbol, p.Strike, p.Volume, p.Premium, p.TradeID)
	case opra.OpenInterest:
		return fmt.Sprintf(" sym=%q strike=%s volume=%d",
			p.Symbol, p.StrikePrice(), p.Volume)
	case opra.LongQuote:
		return fmt.Sprintf(" sym=%q strike=%s bid=%sx%d offer=%sx%d",
			p.Symbol, p.StrikePrice(), p.BidPremium(), p.BidSize, p.OfferPremium(), p.OfferSize)
	case opra.ShortQuote:
		return fmt.Sprintf(" sym=%q strike=%s bid=%sx%d offer=%sx%d",
			p.Symbol, p.StrikePrice(), p.BidPremium(), p.BidSize, p.OfferPremium(), p.OfferSize)
	}
	// Control and underlying value carry header fields only.
	return ""
}

func appendageLines(bid, offer *opra.QuoteAppendage) []string {
	var lines []string
	if bid != nil {
		lines = append(lines, appendageLine("best bid", bid))
	}
	if offer != nil {
		lines = append(lines, appendageLine("best offer", offer))
	}
	return lines
}

func appendageLine(label string, a *opra.QuoteAppendage) string {
	return fmt.Sprintf("    %s: %s %sx%d",
		label, describe(a.Participant, opra.ParticipantName), a.ScaledPrice(), a.Size)
}

func anomalyLine(a opra.Anomaly) string {
	where := "block"
	if a.MessageIndex >= 0 {
		where = fmt.Sprintf("msg %d", a.MessageIndex)
	}
	return fmt.Sprintf("  anomaly: %s at offset %d (%s): %s", a.Kind, a.Offset, where, a.Detail)
}

func categoryText(c opra.Category) string {
	if d, ok := c.Description(); ok {
		return d
	}
	return fmt.Sprintf("category %q (not found)", byte(c))
}

func typeText(msg opra.Message) string {
	info, lookup := opra.TypeDescription(msg.Category, msg.Type)
	switch lookup {
	case opra.TypeFound:
		if info.Abbr != "" {
			return fmt.Sprintf("%s: %s", info.Abbr, info.Desc)
		}
		return info.Desc
	case opra.TypeNotFound:
		return fmt.Sprintf("type %q (not found)", msg.Type)
	default:
		return fmt.Sprintf("type %q (category not found)", msg.Type)
	}
}

// indicatorText is category-conditional: only quote categories use the
// indicator letter table. Elsewhere the field is unused and ' ' is the only
// expected value.
func indicatorText(msg opra.Message) string {
	if msg.Category.IsQuote() {
		if d, ok := opra.IndicatorDescription(msg.Indicator); ok {
			return d
		}
		return fmt.Sprintf("unknown indicator %q", msg.Indicator)
	}
	if msg.Indicator == ' ' {
		return "N/A"
	}
	return fmt.Sprintf("invalid %q", msg.Indicator)
}

func describe(b byte, lookup func(byte) (string, bool)) string {
	if d, ok := lookup(b); ok {
		return d
	}
	return fmt.Sprintf("%q (not found)", b)
}
