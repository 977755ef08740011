package shipping

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateQuery is the request context of one rating call.
type RateQuery struct {
	StoreID          uuid.UUID
	VendorID         uuid.UUID
	WarehouseID      uuid.UUID
	// CarrierID is left Nil by rating calls; the carrier is implied by the method
	CarrierID        uuid.UUID
	CountryID        uuid.UUID
	StateProvinceID  uuid.UUID
	Zip              string
	Subtotal         decimal.Decimal
	ShippingMethodID uuid.UUID

	// IncludeInactive lets admin listings see disabled records
	IncludeInactive bool
	// SkipRegion treats country and state as wildcards on every record
	SkipRegion bool
}

// Matches reports whether rec satisfies every scope dimension of q.
func (q RateQuery) Matches(rec *RateRecord) bool {
	return q.Mismatch(rec) == ""
}

// Mismatch returns the first dimension on which rec fails q, or "" when rec matches.
func (q RateQuery) Mismatch(rec *RateRecord) string {
	switch {
	case !rec.Active && !q.IncludeInactive:
		return "active"
	case !scopeMatches(rec.StoreID, q.StoreID):
		return "store"
	case !scopeMatches(rec.VendorID, q.VendorID):
		return "vendor"
	case !scopeMatches(rec.WarehouseID, q.WarehouseID):
		return "warehouse"
	case q.CarrierID != uuid.Nil && !scopeMatches(rec.CarrierID, q.CarrierID):
		return "carrier"
	case !q.SkipRegion && !scopeMatches(rec.CountryID, q.CountryID):
		return "country"
	case !q.SkipRegion && !scopeMatches(rec.StateProvinceID, q.StateProvinceID):
		return "state"
	case !zipMatches(rec.Zip, q.Zip):
		return "zip"
	case q.ShippingMethodID != uuid.Nil && !scopeMatches(rec.ShippingMethodID, q.ShippingMethodID):
		return "shipping_method"
	case !rec.InSubtotalBand(q.Subtotal):
		return "subtotal"
	}
	return ""
}

func scopeMatches(recordValue, requestValue uuid.UUID) bool {
	return recordValue == uuid.Nil || recordValue == requestValue
}

// zipMatches checks a request zip against a record's pattern list.
// An empty pattern matches anything; an empty request zip matches only that.
// Entries ending in '*' are prefix matches.
func zipMatches(pattern, zip string) bool {
	if pattern == "" {
		return true
	}
	zip = normalizeZip(zip)
	if zip == "" {
		return false
	}
	for _, entry := range strings.Split(pattern, ",") {
		if entry == "" {
			continue
		}
		if prefix, ok := strings.CutSuffix(entry, "*"); ok {
			if strings.HasPrefix(zip, prefix) {
				return true
			}
			continue
		}
		if entry == zip {
			return true
		}
	}
	return false
}

func normalizeZip(zip string) string {
	return strings.ToUpper(strings.Join(strings.Fields(zip), ""))
}

// normalizeZipPattern canonicalizes a comma separated zip list for storage.
func normalizeZipPattern(pattern string) string {
	parts := strings.Split(pattern, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = normalizeZip(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
