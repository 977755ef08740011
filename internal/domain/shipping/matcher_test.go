package shipping

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateQuery_CountryWildcard(t *testing.T) {
	country5 := uuid.New()
	other := uuid.New()

	wildcard := newTestRecord(nil)
	specific := newTestRecord(func(in *RateRecordInput) { in.CountryID = country5 })

	for _, c := range []uuid.UUID{country5, other, uuid.Nil} {
		assert.True(t, RateQuery{CountryID: c}.Matches(wildcard), "wildcard country must match %s", c)
	}
	assert.True(t, RateQuery{CountryID: country5}.Matches(specific))
	assert.False(t, RateQuery{CountryID: other}.Matches(specific))
	assert.False(t, RateQuery{CountryID: uuid.Nil}.Matches(specific))
}

func TestRateQuery_Dimensions(t *testing.T) {
	store, vendor, warehouse, carrier, state, method := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name   string
		mutate func(*RateRecordInput)
		query  RateQuery
		want   string
	}{
		{"store mismatch", func(in *RateRecordInput) { in.StoreID = store }, RateQuery{StoreID: uuid.New()}, "store"},
		{"vendor mismatch", func(in *RateRecordInput) { in.VendorID = vendor }, RateQuery{}, "vendor"},
		{"warehouse match", func(in *RateRecordInput) { in.WarehouseID = warehouse }, RateQuery{WarehouseID: warehouse}, ""},
		{"carrier mismatch", func(in *RateRecordInput) { in.CarrierID = carrier }, RateQuery{CarrierID: uuid.New()}, "carrier"},
		{"carrier not requested", func(in *RateRecordInput) { in.CarrierID = carrier }, RateQuery{}, ""},
		{"state mismatch", func(in *RateRecordInput) { in.StateProvinceID = state }, RateQuery{StateProvinceID: uuid.New()}, "state"},
		{"state ignored when region skipped", func(in *RateRecordInput) { in.StateProvinceID = state }, RateQuery{SkipRegion: true}, ""},
		{"method not requested", func(in *RateRecordInput) { in.ShippingMethodID = method }, RateQuery{}, ""},
		{"method requested and differs", func(in *RateRecordInput) { in.ShippingMethodID = method }, RateQuery{ShippingMethodID: uuid.New()}, "shipping_method"},
		{"wildcard method matches requested", nil, RateQuery{ShippingMethodID: method}, ""},
		{"inactive excluded", func(in *RateRecordInput) { in.Active = false }, RateQuery{}, "active"},
		{"inactive included on request", func(in *RateRecordInput) { in.Active = false }, RateQuery{IncludeInactive: true}, ""},
		{"subtotal below band", func(in *RateRecordInput) { in.OrderSubtotalFrom = dec("50") }, RateQuery{Subtotal: dec("49.99")}, "subtotal"},
		{"subtotal on lower bound", func(in *RateRecordInput) { in.OrderSubtotalFrom = dec("50") }, RateQuery{Subtotal: dec("50")}, ""},
		{"subtotal on upper bound", func(in *RateRecordInput) { in.OrderSubtotalTo = dec("150") }, RateQuery{Subtotal: dec("150")}, ""},
		{"subtotal above band", func(in *RateRecordInput) { in.OrderSubtotalTo = dec("150") }, RateQuery{Subtotal: dec("150.01")}, "subtotal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestRecord(tt.mutate)
			assert.Equal(t, tt.want, tt.query.Mismatch(rec))
		})
	}
}

func TestRateQuery_Zip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		zip     string
		want    bool
	}{
		{"wildcard pattern, any zip", "", "90210", true},
		{"wildcard pattern, empty zip", "", "", true},
		{"specific pattern, empty zip", "90210", "", false},
		{"exact match", "90210", "90210", true},
		{"exact mismatch", "90210", "90211", false},
		{"case and space insensitive", "sw1a 1aa", " SW1A1AA ", true},
		{"list entry", "10001, 90210", "90210", true},
		{"prefix entry", "902*", "90210", true},
		{"prefix entry mismatch", "902*", "91210", false},
		{"skip region keeps zip", "90210", "10001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestRecord(func(in *RateRecordInput) { in.Zip = tt.pattern })
			q := RateQuery{Zip: tt.zip, SkipRegion: tt.name == "skip region keeps zip"}
			assert.Equal(t, tt.want, q.Matches(rec))
		})
	}
}

func TestMatcher_FindCandidates(t *testing.T) {
	ctx := context.Background()
	country := uuid.New()
	vendorA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	vendorB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mk := func(vendor uuid.UUID, order int, created time.Time, mutate func(*RateRecordInput)) RateRecord {
		rec := newTestRecord(func(in *RateRecordInput) {
			in.VendorID = vendor
			in.DisplayOrder = order
			if mutate != nil {
				mutate(in)
			}
		})
		rec.CreatedAt = created
		return *rec
	}

	r1 := mk(vendorB, 0, base, nil)
	r2 := mk(vendorA, 2, base, nil)
	r3 := mk(vendorA, 1, base.Add(time.Hour), nil)
	r4 := mk(vendorA, 1, base, nil)
	r5 := mk(uuid.Nil, 9, base, nil)
	rOtherCountry := mk(uuid.Nil, 0, base, func(in *RateRecordInput) { in.CountryID = uuid.New() })
	rInactive := mk(uuid.Nil, 0, base, func(in *RateRecordInput) { in.Active = false })

	reader := &stubReader{records: []RateRecord{r1, r2, r3, r4, r5, rOtherCountry, rInactive}}
	m := NewMatcher(reader)
	q := RateQuery{VendorID: vendorA, CountryID: country}

	t.Run("filters and orders by vendor, display order, creation", func(t *testing.T) {
		got, err := m.FindCandidates(ctx, q, DefaultPolicy())
		require.NoError(t, err)

		ids := make([]uuid.UUID, len(got))
		for i := range got {
			ids[i] = got[i].ID
		}
		// wildcard vendor sorts before vendor A; vendor B is out of scope
		assert.Equal(t, []uuid.UUID{r5.ID, r4.ID, r3.ID, r2.ID}, ids)
	})

	t.Run("ignore region policy skips country", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.IgnoreRegion = true
		got, err := m.FindCandidates(ctx, q, policy)
		require.NoError(t, err)
		assert.Len(t, got, 5)
		assert.True(t, reader.queries[len(reader.queries)-1].SkipRegion)
	})

	t.Run("store error propagates unchanged", func(t *testing.T) {
		boom := errors.New("store unavailable")
		failing := NewMatcher(&stubReader{err: boom})
		got, err := failing.FindCandidates(ctx, RateQuery{}, DefaultPolicy())
		assert.Nil(t, got)
		assert.Same(t, boom, err)
	})

	t.Run("test mode logs decisions", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		traced := NewMatcher(reader, WithMatcherLogger(zap.New(core)))
		policy := DefaultPolicy()
		policy.TestMode = true

		_, err := traced.FindCandidates(ctx, q, policy)
		require.NoError(t, err)
		assert.Equal(t, 4, logs.FilterMessage("Rate record matched").Len())
		assert.Equal(t, 3, logs.FilterMessage("Rate record rejected").Len())
	})
}
