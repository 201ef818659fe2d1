package opra

// Fixed payload sizes in bytes, excluding the message header and any quote
// appendages. Administrative is the one variable-length category.
const (
	lastSalePayloadSize     = 28
	openInterestPayloadSize = 18
	longQuotePayloadSize    = 31
	shortQuotePayloadSize   = 17
)

func decodeAdministrative(cur *cursor) (Administrative, error) {
	n, err := cur.u16()
	if err != nil {
		return Administrative{}, err
	}
	if n == 0 {
		return Administrative{}, nil
	}
	data, err := cur.take(int(n))
	if err != nil {
		return Administrative{}, err
	}
	return Administrative{Data: data}, nil
}

func decodeLastSale(cur *cursor) (LastSale, error) {
	var p LastSale
	var err error

	if err = cur.need(lastSalePayloadSize); err != nil {
		return p, err
	}

	p.Symbol, _ = cur.takeString(5)
	p.Reserved1, _ = cur.u8()
	exp, _ := cur.take(3)
	copy(p.Expiration[:], exp)

	strikeDenom, _ := cur.u8()
	strike, _ := cur.u32()
	p.Strike = Price{Raw: uint64(strike), Denom: DenomCode(strikeDenom)}

	p.Volume, _ = cur.u32()

	premiumDenom, _ := cur.u8()
	premium, _ := cur.u32()
	p.Premium = Price{Raw: uint64(premium), Denom: DenomCode(premiumDenom)}

	p.TradeID, _ = cur.u32()
	p.Reserved2, _ = cur.u8()

	return p, nil
}

func decodeOpenInterest(cur *cursor) (OpenInterest, error) {
	var p OpenInterest

	if err := cur.need(openInterestPayloadSize); err != nil {
		return p, err
	}

	p.Symbol, _ = cur.takeString(5)
	p.Reserved, _ = cur.u8()
	exp, _ := cur.take(3)
	copy(p.Expiration[:], exp)

	denom, _ := cur.u8()
	p.StrikeDenom = DenomCode(denom)
	p.Strike, _ = cur.u32()
	p.Volume, _ = cur.u32()

	return p, nil
}

func decodeLongQuote(cur *cursor) (LongQuote, error) {
	var p LongQuote

	if err := cur.need(longQuotePayloadSize); err != nil {
		return p, err
	}

	p.Symbol, _ = cur.takeString(5)
	p.Reserved, _ = cur.u8()
	exp, _ := cur.take(3)
	copy(p.Expiration[:], exp)

	strikeDenom, _ := cur.u8()
	p.StrikeDenom = DenomCode(strikeDenom)
	p.Strike, _ = cur.u32()

	premiumDenom, _ := cur.u8()
	p.PremiumDenom = DenomCode(premiumDenom)

	p.BidPrice, _ = cur.u32()
	p.BidSize, _ = cur.u32()
	p.OfferPrice, _ = cur.u32()
	p.OfferSize, _ = cur.u32()

	return p, nil
}

func decodeShortQuote(cur *cursor) (ShortQuote, error) {
	var p ShortQuote

	if err := cur.need(shortQuotePayloadSize); err != nil {
		return p, err
	}

	p.Symbol, _ = cur.takeString(4)
	exp, _ := cur.take(3)
	copy(p.Expiration[:], exp)

	p.Strike, _ = cur.u16()
	p.BidPrice, _ = cur.u16()
	p.BidSize, _ = cur.u16()
	p.OfferPrice, _ = cur.u16()
	p.OfferSize, _ = cur.u16()

	return p, nil
}
