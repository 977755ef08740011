package shipping

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateResultKind tells the three rating outcomes apart.
type RateResultKind int

const (
	// RateResultNoMatch means no option may be offered
	RateResultNoMatch RateResultKind = iota
	// RateResultNotConfigured means nothing was configured and the option is quoted at zero
	RateResultNotConfigured
	// RateResultRate carries a computed amount
	RateResultRate
)

// String returns a stable name for logs and JSON.
func (k RateResultKind) String() string {
	switch k {
	case RateResultNoMatch:
		return "no_match"
	case RateResultNotConfigured:
		return "not_configured"
	case RateResultRate:
		return "rate"
	}
	return fmt.Sprintf("RateResultKind(%d)", int(k))
}

// RateResult is Rate(amount) | NotConfigured | NoMatch.
type RateResult struct {
	kind   RateResultKind
	amount decimal.Decimal
}

// Rate wraps a computed amount
func Rate(amount decimal.Decimal) RateResult {
	return RateResult{kind: RateResultRate, amount: amount}
}

// NotConfigured is the result when no rule applies and unmatched methods are allowed
func NotConfigured() RateResult {
	return RateResult{kind: RateResultNotConfigured}
}

// NoMatch is the result when no rule applies and unmatched methods are suppressed
func NoMatch() RateResult {
	return RateResult{kind: RateResultNoMatch}
}

// Kind returns the outcome kind.
func (r RateResult) Kind() RateResultKind {
	return r.kind
}

// IsRate reports whether r carries a computed amount.
func (r RateResult) IsRate() bool {
	return r.kind == RateResultRate
}

// Amount returns the price to quote and whether an option should be offered at all.
// NotConfigured quotes zero; NoMatch offers nothing.
func (r RateResult) Amount() (decimal.Decimal, bool) {
	switch r.kind {
	case RateResultRate:
		return r.amount, true
	case RateResultNotConfigured:
		return decimal.Zero, true
	case RateResultNoMatch:
		return decimal.Zero, false
	}
	return decimal.Zero, false
}

// String renders the result for logs.
func (r RateResult) String() string {
	if r.kind == RateResultRate {
		return r.amount.StringFixed(2)
	}
	return r.kind.String()
}

// Calculate prices record for the given billable weight.
//
//	total  = AdditionalFixedCost
//	total += RatePerWeightUnit * max(weight - LowerWeightLimit, 0)   when RatePerWeightUnit > 0
//	total += round2(total * PercentageRateOfSubtotal / 100)          when PercentageRateOfSubtotal > 0
//	result = max(total, 0)
//
// The percentage applies to the running total, not the order subtotal. A nil
// record yields NoMatch under LimitMethodsToCreated and NotConfigured otherwise.
func Calculate(record *RateRecord, weight decimal.Decimal, policy Policy) RateResult {
	if record == nil {
		if policy.LimitMethodsToCreated {
			return NoMatch()
		}
		return NotConfigured()
	}

	total := record.AdditionalFixedCost

	if record.RatePerWeightUnit.IsPositive() {
		weightRate := decimal.Max(weight.Sub(record.LowerWeightLimit), decimal.Zero)
		total = total.Add(record.RatePerWeightUnit.Mul(weightRate))
	}

	if record.PercentageRateOfSubtotal.IsPositive() {
		total = total.Add(percentageSurcharge(total, record.PercentageRateOfSubtotal))
	}

	return Rate(decimal.Max(total, decimal.Zero))
}

// percentageSurcharge multiplies in single precision and rounds half away
// from zero at two places, matching the published price to the cent.
func percentageSurcharge(total, pct decimal.Decimal) decimal.Decimal {
	t := float32(total.InexactFloat64())
	p := float32(pct.InexactFloat64())
	return decimal.NewFromFloat32(t * p / 100).Round(2)
}
