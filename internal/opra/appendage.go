package opra

// AppendageSize is the fixed width of one quote appendage sub-record.
const AppendageSize = 10

// The indicator letters that declare a best-bid or best-offer appendage.
// Protocol revisions enumerate these sets in different orders; only
// membership matters, so they are tested as sets.
func hasBidAppendage(indicator byte) bool {
	switch indicator {
	case 'M', 'N', 'O', 'P':
		return true
	}
	return false
}

func hasOfferAppendage(indicator byte) bool {
	switch indicator {
	case 'C', 'G', 'K', 'O':
		return true
	}
	return false
}

// decodeAppendages reads the 0, 1 or 2 sub-records the message indicator
// declares, bid first. An indicator in neither set is a normal outcome:
// the cursor does not move.
func decodeAppendages(cur *cursor, indicator byte) (bid, offer *QuoteAppendage, err error) {
	if hasBidAppendage(indicator) {
		bid, err = decodeAppendage(cur)
		if err != nil {
			return nil, nil, err
		}
	}
	if hasOfferAppendage(indicator) {
		offer, err = decodeAppendage(cur)
		if err != nil {
			return bid, nil, err
		}
	}
	return bid, offer, nil
}

func decodeAppendage(cur *cursor) (*QuoteAppendage, error) {
	if err := cur.need(AppendageSize); err != nil {
		return nil, err
	}

	var a QuoteAppendage
	a.Participant, _ = cur.u8()
	denom, _ := cur.u8()
	a.Denom = DenomCode(denom)
	a.Price, _ = cur.u32()
	a.Size, _ = cur.u32()

	return &a, nil
}
