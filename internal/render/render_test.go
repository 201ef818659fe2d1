package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/opra"
)

func testBlock(msgs ...opra.Message) *opra.Block {
	return &opra.Block{
		Version:        1,
		Size:           50,
		DataFeed:       'O',
		Retransmission: ' ',
		Session:        0,
		SequenceNumber: 7,
		MessageCount:   uint8(len(msgs)),
		Seconds:        1700000000,
		Nanos:          500,
		Messages:       msgs,
		Consumed:       50,
	}
}

func TestHeaderLine(t *testing.T) {
	lines := Lines(testBlock(), nil)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "seq=7")
	assert.Contains(t, lines[0], "feed=OPRA")
	assert.Contains(t, lines[0], "retrans=Normal")
	assert.Contains(t, lines[0], "session=Normal")
}

func TestQuoteMessageWithAppendages(t *testing.T) {
	msg := opra.Message{
		Participant: 'C',
		Category:    opra.CategoryLongQuote,
		Type:        ' ',
		Indicator:   'O',
		Payload: opra.LongQuote{
			Symbol:       "GOOG ",
			StrikeDenom:  opra.Denom1,
			Strike:       1425,
			PremiumDenom: opra.Denom2,
			BidPrice:     10050,
			BidSize:      10,
			OfferPrice:   10060,
			OfferSize:    12,
			Bid:          &opra.QuoteAppendage{Participant: 'N', Denom: opra.Denom2, Price: 10049, Size: 5},
			Offer:        &opra.QuoteAppendage{Participant: 'X', Denom: opra.Denom2, Price: 10061, Size: 7},
		},
	}

	lines := Lines(testBlock(msg), nil)
	require.Len(t, lines, 4) // header, message, two appendages

	assert.Contains(t, lines[1], "CBOE")
	assert.Contains(t, lines[1], "strike=142.5")
	assert.Contains(t, lines[1], "bid=100.50x10")
	assert.Contains(t, lines[1], "offer=100.60x12")

	assert.Contains(t, lines[2], "best bid")
	assert.Contains(t, lines[2], "100.49x5")
	assert.Contains(t, lines[3], "best offer")
	assert.Contains(t, lines[3], "100.61x7")
}

func TestQuoteIndicatorUsesLetterTable(t *testing.T) {
	msg := opra.Message{
		Category:  opra.CategoryShortQuote,
		Indicator: 'Z', // not a defined letter
		Payload:   opra.ShortQuote{Symbol: "AAPL"},
	}
	lines := Lines(testBlock(msg), nil)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `unknown indicator 'Z'`)
}

func TestNonQuoteIndicatorRendering(t *testing.T) {
	unused := opra.Message{Category: opra.CategoryControl, Type: 'C', Indicator: ' ', Payload: opra.Control{}}
	lines := Lines(testBlock(unused), nil)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "indicator=N/A")
	assert.Contains(t, lines[1], "Start of Day")

	bad := opra.Message{Category: opra.CategoryControl, Type: 'C', Indicator: 'X', Payload: opra.Control{}}
	lines = Lines(testBlock(bad), nil)
	assert.Contains(t, lines[1], `invalid 'X'`)
}

func TestLastSaleTypeAbbreviation(t *testing.T) {
	msg := opra.Message{
		Participant: 'N',
		Category:    opra.CategoryLastSale,
		Type:        'I',
		Indicator:   ' ',
		Payload: opra.LastSale{
			Symbol:  "MSFT ",
			Strike:  opra.Price{Raw: 123456, Denom: opra.Denom2},
			Volume:  250,
			Premium: opra.Price{Raw: 99, Denom: opra.Denom0},
			TradeID: 777,
		},
	}
	lines := Lines(testBlock(msg), nil)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "AUTO")
	assert.Contains(t, lines[1], "strike=1234.56")
	assert.Contains(t, lines[1], "premium=99")
}

func TestUnknownEnumeratedValues(t *testing.T) {
	msg := opra.Message{
		Participant: '?',
		Category:    opra.CategoryOpenInterest,
		Type:        0x7F,
		Indicator:   ' ',
		Payload:     opra.OpenInterest{Symbol: "SPX  ", StrikeDenom: 'Z', Strike: 42},
	}
	lines := Lines(testBlock(msg), nil)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `'?' (not found)`)
	assert.Contains(t, lines[1], "(not found)")
	assert.Contains(t, lines[1], "bad denominator code 'Z'")
}

func TestAnomalyLines(t *testing.T) {
	anomalies := []opra.Anomaly{
		{Kind: opra.AnomalyUnknownCategory, Offset: 34, MessageIndex: 1, Detail: "category 'Z' has no defined layout"},
		{Kind: opra.AnomalyLengthMismatch, Offset: 46, MessageIndex: -1, Detail: "consumed 46 of 48 available bytes"},
	}
	lines := Lines(testBlock(), anomalies)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "unknown category at offset 34 (msg 1)")
	assert.Contains(t, lines[2], "length mismatch at offset 46 (block)")
}
