package shipping

import "github.com/shopspring/decimal"

// FilterByWeight keeps the candidates whose weight band contains the weight
// basis each record declares: cubic weight (length*width*height*factor) for
// cubic records, dead weight for the rest. Bands are inclusive on both ends.
func FilterByWeight(candidates []RateRecord, deadWeight, length, width, height decimal.Decimal) []RateRecord {
	m := Measurements{Weight: deadWeight, Length: length, Width: width, Height: height}
	kept := make([]RateRecord, 0, len(candidates))
	for i := range candidates {
		if candidates[i].InWeightBand(candidates[i].BillableWeight(m)) {
			kept = append(kept, candidates[i])
		}
	}
	return kept
}
