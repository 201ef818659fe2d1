package opra

// Category is the single-character tag that selects a message's payload
// shape. The set is closed by the protocol definition.
type Category byte

const (
	CategoryLastSale        Category = 'a'
	CategoryOpenInterest    Category = 'd'
	CategoryEODSummary      Category = 'f'
	CategoryLongQuote       Category = 'k'
	CategoryShortQuote      Category = 'q'
	CategoryAdministrative  Category = 'C'
	CategoryControl         Category = 'H'
	CategoryUnderlyingValue Category = 'Y'
)

// Decodable reports whether the category has a defined payload layout.
// End-of-day summary ('f') appears in the type tables but has no published
// fixed layout, so a block containing one cannot be walked past it.
func (c Category) Decodable() bool {
	switch c {
	case CategoryLastSale, CategoryOpenInterest, CategoryLongQuote,
		CategoryShortQuote, CategoryAdministrative, CategoryControl,
		CategoryUnderlyingValue:
		return true
	}
	return false
}

// IsQuote reports whether the category may carry quote appendages and uses
// the indicator-letter table.
func (c Category) IsQuote() bool {
	return c == CategoryLongQuote || c == CategoryShortQuote
}

// Message is one feed event: the fixed header fields plus the
// category-specific payload variant. Exactly one payload variant is set,
// selected by Category.
type Message struct {
	Participant     byte
	Category        Category
	Type            byte
	Indicator       byte
	TransactionID   uint32
	ReferenceNumber uint32
	Payload         Payload
}

// Payload is the category-specific portion of a message. The concrete
// types below are the only implementations.
type Payload interface {
	payload()
}

// Administrative carries a length-prefixed opaque text blob.
type Administrative struct {
	Data []byte
}

// LastSale reports one options trade.
type LastSale struct {
	Symbol     string
	Reserved1  byte
	Expiration [3]byte
	Strike     Price
	Volume     uint32
	Premium    Price
	TradeID    uint32
	Reserved2  byte
}

// OpenInterest reports outstanding contract volume. The strike is carried
// unscaled with its denominator code alongside.
type OpenInterest struct {
	Symbol      string
	Reserved    byte
	Expiration  [3]byte
	StrikeDenom DenomCode
	Strike      uint32
	Volume      uint32
}

// StrikePrice returns the strike with its wire denominator code.
func (p OpenInterest) StrikePrice() Price {
	return Price{Raw: uint64(p.Strike), Denom: p.StrikeDenom}
}

// LongQuote is the full-width quote layout. Price and size fields are raw
// scaled integers; the denominator codes travel with the message.
type LongQuote struct {
	Symbol       string
	Reserved     byte
	Expiration   [3]byte
	StrikeDenom  DenomCode
	Strike       uint32
	PremiumDenom DenomCode
	BidPrice     uint32
	BidSize      uint32
	OfferPrice   uint32
	OfferSize    uint32
	Bid          *QuoteAppendage
	Offer        *QuoteAppendage
}

// StrikePrice returns the strike with its wire denominator code.
func (q LongQuote) StrikePrice() Price { return Price{Raw: uint64(q.Strike), Denom: q.StrikeDenom} }

// BidPremium returns the bid price scaled by the premium denominator code.
func (q LongQuote) BidPremium() Price { return Price{Raw: uint64(q.BidPrice), Denom: q.PremiumDenom} }

// OfferPremium returns the offer price scaled by the premium denominator code.
func (q LongQuote) OfferPremium() Price {
	return Price{Raw: uint64(q.OfferPrice), Denom: q.PremiumDenom}
}

// ShortQuote is the compact quote layout. Scaling is fixed by the protocol
// rather than carried on the wire: the strike implies one decimal place,
// prices two, sizes none.
type ShortQuote struct {
	Symbol     string
	Expiration [3]byte
	Strike     uint16
	BidPrice   uint16
	BidSize    uint16
	OfferPrice uint16
	OfferSize  uint16
	Bid        *QuoteAppendage
	Offer      *QuoteAppendage
}

func (q ShortQuote) StrikePrice() Price { return Price{Raw: uint64(q.Strike), Denom: Denom1} }
func (q ShortQuote) BidPremium() Price  { return Price{Raw: uint64(q.BidPrice), Denom: Denom2} }
func (q ShortQuote) OfferPremium() Price {
	return Price{Raw: uint64(q.OfferPrice), Denom: Denom2}
}

// Control messages carry header fields only.
type Control struct{}

// UnderlyingValue messages carry header fields only.
type UnderlyingValue struct{}

// QuoteAppendage is one trailing 10-byte sub-record attached to a quote
// message: another participant's bid or offer at the same level.
type QuoteAppendage struct {
	Participant byte
	Denom       DenomCode
	Price       uint32
	Size        uint32
}

// ScaledPrice returns the appendage price with its denominator code.
func (a QuoteAppendage) ScaledPrice() Price { return Price{Raw: uint64(a.Price), Denom: a.Denom} }

func (Administrative) payload()  {}
func (LastSale) payload()        {}
func (OpenInterest) payload()    {}
func (LongQuote) payload()       {}
func (ShortQuote) payload()      {}
func (Control) payload()         {}
func (UnderlyingValue) payload() {}
