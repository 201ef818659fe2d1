package opra

// TypeInfo describes one message type code within a category. Abbr is the
// short mnemonic where the protocol defines one.
type TypeInfo struct {
	Abbr string
	Desc string
}

// TypeLookup is the outcome of a message-type table lookup. Neither miss
// is an error: the type byte never affects message layout or length.
type TypeLookup uint8

const (
	TypeFound TypeLookup = iota
	TypeNotFound
	CategoryNotFound
)

// TypeDescription resolves a message type byte within its category.
func TypeDescription(c Category, t byte) (TypeInfo, TypeLookup) {
	table, ok := typesForCategory(c)
	if !ok {
		return TypeInfo{}, CategoryNotFound
	}
	info, ok := table[t]
	if !ok {
		return TypeInfo{}, TypeNotFound
	}
	return info, TypeFound
}

func typesForCategory(c Category) (map[byte]TypeInfo, bool) {
	switch c {
	case CategoryAdministrative:
		return administrativeTypes, true
	case CategoryControl:
		return controlTypes, true
	case CategoryUnderlyingValue:
		return underlyingValueTypes, true
	case CategoryLastSale:
		return lastSaleTypes, true
	case CategoryOpenInterest:
		return openInterestTypes, true
	case CategoryEODSummary:
		return eodSummaryTypes, true
	case CategoryLongQuote:
		return longQuoteTypes, true
	case CategoryShortQuote:
		return shortQuoteTypes, true
	}
	return nil, false
}

// Description returns the display name for the category.
func (c Category) Description() (string, bool) {
	d, ok := categoryDescriptions[c]
	return d, ok
}

// ParticipantName returns the venue name for a participant id.
func ParticipantName(id byte) (string, bool) {
	name, ok := participantNames[id]
	return name, ok
}

// IndicatorDescription resolves a message indicator byte for the quote
// categories. Non-quote categories expect the ' ' sentinel instead.
func IndicatorDescription(indicator byte) (string, bool) {
	d, ok := indicatorDescriptions[indicator]
	return d, ok
}

// DataFeedDescription resolves the block header data-feed indicator.
func DataFeedDescription(b byte) (string, bool) {
	if b == 'O' {
		return "OPRA", true
	}
	return "", false
}

// RetransmissionDescription resolves the block header retransmission
// indicator.
func RetransmissionDescription(b byte) (string, bool) {
	switch b {
	case ' ':
		return "Normal", true
	case 'V':
		return "Retransmitted", true
	}
	return "", false
}

// SessionDescription resolves the block header session indicator, which is
// either 0x00 or an ASCII letter.
func SessionDescription(b byte) (string, bool) {
	switch b {
	case 0:
		return "Normal", true
	case 'X':
		return "Pre-market Extended", true
	}
	return "", false
}

var categoryDescriptions = map[Category]string{
	CategoryLastSale:        "Equity and Index Last Sale",
	CategoryOpenInterest:    "Open Interest",
	CategoryEODSummary:      "Equity and Index End of Day Summary",
	CategoryLongQuote:       "Equity and Index Long Quote",
	CategoryShortQuote:      "Equity and Index Short Quote",
	CategoryAdministrative:  "Administrative",
	CategoryControl:         "Control",
	CategoryUnderlyingValue: "Underlying Value",
}

var participantNames = map[byte]string{
	'A': "AMEX",
	'B': "BOX",
	'C': "CBOE",
	'D': "EMERALD",
	'E': "EDGX",
	'H': "GEMX",
	'I': "ISE",
	'J': "MRX",
	'M': "MIAX",
	'N': "NYSE",
	'O': "OPRA",
	'P': "PEARL",
	'Q': "MIAX",
	'T': "BX",
	'W': "C2",
	'X': "PHLX",
	'Z': "BATS",
}

var indicatorDescriptions = map[byte]string{
	'A': "No Best Bid Change, No Best Offer Change",
	'B': "No Best Bid Change, Quote Contains Best Offer",
	'C': "No Best Bid Change, Best Offer Appendage",
	'D': "No Best Bid Change, No Best Offer",

	'E': "Quote Contains Best Bid, No Best Offer Change",
	'F': "Quote Contains Best Bid, Quote Contains Best Offer",
	'G': "Quote Contains Best Bid, Best Offer Appendage",
	'H': "Quote Contains Best Bid, No Best Offer",

	'I': "No Best Bid, No Best Offer Change",
	'J': "No Best Bid, Quote Contains Best Offer",
	'K': "No Best Bid, Best Offer Appendage",
	'L': "No Best Bid, No Best Offer",

	'M': "Best Bid Appendage, No Best Offer Change",
	'N': "Best Bid Appendage, Quote Contains Best Offer",
	'O': "Best Bid Appendage, Best Offer Appendage",
	'P': "Best Bid Appendage, No Best Offer",

	' ': "Unused",
}

var administrativeTypes = map[byte]TypeInfo{
	' ': {Desc: "Administrative"},
}

var controlTypes = map[byte]TypeInfo{
	'C': {Desc: "Start of Day"},
	'E': {Desc: "Start of Summary"},
	'F': {Desc: "End of Summary"},
	'J': {Desc: "End of Day"},
	'K': {Desc: "Reset Block Sequence Number"},
	'L': {Desc: "Start of Open Interest"},
	'M': {Desc: "End of Open Interest"},
	'N': {Desc: "Line Integrity"},
	'P': {Desc: "Disaster Recovery Data Center Activation"},
}

var underlyingValueTypes = map[byte]TypeInfo{
	' ': {Desc: "Index based on Last Sale"},
	'I': {Desc: "Index based on Bid and Offer"},
}

var openInterestTypes = map[byte]TypeInfo{
	' ': {Desc: "Open Interest"},
}

var eodSummaryTypes = map[byte]TypeInfo{
	' ': {Desc: "Equity and Index End of Day Summary"},
}

var lastSaleTypes = map[byte]TypeInfo{
	'A': {Abbr: "CANC", Desc: "Previously reported (except last or opening) now to be cancelled"},
	'B': {Abbr: "OSEQ", Desc: "Reported late and out of sequence"},
	'C': {Abbr: "CNCL", Desc: "Last reported and is now cancelled"},
	'D': {Abbr: "LATE", Desc: "Reported late, but in correct sequence"},
	'E': {Abbr: "CNCO", Desc: "First report of day, now to be cancelled"},
	'F': {Abbr: "OPEN", Desc: "Late report of opening trade, and is out of sequence"},
	'G': {Abbr: "CNOL", Desc: "Only report for day, now to be cancelled"},
	'H': {Abbr: "OPNL", Desc: "Late report of opening trade, but in correct sequence"},
	'I': {Abbr: "AUTO", Desc: "Executed electronically"},
	'J': {Abbr: "REOP", Desc: "Reopening after halt"},
	'S': {Abbr: "ISOI", Desc: "Execution of Intermarket Sweep Order"},
	'a': {Abbr: "SLAN", Desc: "Single Leg Auction, non ISO"},
	'b': {Abbr: "SLAI", Desc: "Single Leg Auction, ISO"},
	'c': {Abbr: "SLCN", Desc: "Single Leg Cross, non ISO"},
	'd': {Abbr: "SLCI", Desc: "Single Leg Cross, ISO"},
	'e': {Abbr: "SLFT", Desc: "Single Leg Floor Trade"},
	'f': {Abbr: "MLET", Desc: "Multi Leg Auto-Electronic Trade"},
	'g': {Abbr: "MLAT", Desc: "Multi Leg Auction"},
	'h': {Abbr: "MLCT", Desc: "Multi Leg Cross"},
	'i': {Abbr: "MLFT", Desc: "Multi Leg Floor Trade"},
	'j': {Abbr: "MESL", Desc: "Multi Leg Auto-Electronic Trade against single leg(s)"},
	'k': {Abbr: "TLAT", Desc: "Stock Options Auction"},
	'l': {Abbr: "MASL", Desc: "Multi Leg Auction against single leg(s)"},
	'm': {Abbr: "MFSL", Desc: "Multi Leg Floor Trade against single leg(s)"},
	'n': {Abbr: "TLET", Desc: "Stock Options Auto-Electronic Trade"},
	'o': {Abbr: "TLCT", Desc: "Stock Options Cross"},
	'p': {Abbr: "TLFT", Desc: "Stock Options Floor Trade"},
	'q': {Abbr: "TESL", Desc: "Stock Options Auto-Electronic Trade against single leg(s)"},
	'r': {Abbr: "TASL", Desc: "Stock Options Auction against single leg(s)"},
	's': {Abbr: "TFSL", Desc: "Stock Options Floor Trade against single leg(s)"},
	't': {Abbr: "CBMO", Desc: "Multi Leg Floor Trade of Proprietary Products"},
	'u': {Abbr: "MCTP", Desc: "Multilateral Compression Trade of Proprietary Products"},
	'v': {Abbr: "EXHT", Desc: "Extended Hours Trade"},
}

var longQuoteTypes = map[byte]TypeInfo{
	' ': {Desc: "Regular Trading"},
	'F': {Desc: "Non-Firm Quote"},
	'I': {Desc: "Indicative Value"},
	'R': {Desc: "Rotation"},
	'T': {Desc: "Trading Halted"},
	'A': {Desc: "Eligible for Automatic Execution"},
	'B': {Desc: "Bid Contains Customer Trading Interest"},
	'O': {Desc: "Offer Contains Customer Trading Interest"},
	'C': {Desc: "Both Bid and Offer Contain Customer Trading Interest"},
	'X': {Desc: "Offer Side of Quote Not Firm; Bid Side Firm"},
	'Y': {Desc: "Bid Side of Quote Not Firm; Offer Side Firm"},
}

// The short quote table currently matches the long quote table.
var shortQuoteTypes = longQuoteTypes
