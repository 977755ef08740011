package shipping

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assemblerFixture struct {
	catalog   *memCatalog
	assembler *Assembler
	carrier   *Carrier
	method    *ShippingMethod
}

func newAssemblerFixture() *assemblerFixture {
	cat := newMemCatalog()
	f := &assemblerFixture{
		catalog: cat,
		carrier: cat.addCarrier("Carrier A", DefaultSystemName, CarrierKindGeneric),
		method:  cat.addMethod("Ground", "3-5 business days"),
	}
	f.assembler = NewAssembler(cat, cat, cat, cat)
	return f
}

func (f *assemblerFixture) rated(mutate func(*RateRecordInput), amount string) RatedRecord {
	rec := newTestRecord(func(in *RateRecordInput) {
		in.CarrierID = f.carrier.ID
		in.ShippingMethodID = f.method.ID
		if mutate != nil {
			mutate(in)
		}
	})
	return RatedRecord{Record: rec, Result: Rate(dec(amount))}
}

func TestAssembler_NameAndDescription(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture()

	opts, err := f.assembler.Assemble(ctx, []RatedRecord{
		f.rated(func(in *RateRecordInput) { in.TransitDays = intPtr(3) }, "17"),
		f.rated(func(in *RateRecordInput) { in.CarrierID = uuid.Nil; in.Description = "Own fleet" }, "4"),
	}, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, opts, 2)

	assert.Equal(t, "Carrier A - Ground", opts[0].Name)
	assert.Equal(t, "Carrier A", opts[0].CarrierName)
	assert.Equal(t, "3-5 business days", opts[0].Description)
	assert.Equal(t, 3, *opts[0].TransitDays)
	assert.True(t, dec("17").Equal(opts[0].Rate))
	assert.Equal(t, RateResultRate, opts[0].Result)

	assert.Equal(t, "Ground", opts[1].Name)
	assert.Equal(t, "Own fleet", opts[1].Description)
	assert.Nil(t, opts[1].TransitDays)
}

func TestAssembler_SkipsForeignSystemName(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture()
	foreign := f.catalog.addCarrier("Other", "Shipping.FixedByWeightByTotal", CarrierKindGeneric)

	opts, err := f.assembler.Assemble(ctx, []RatedRecord{
		f.rated(func(in *RateRecordInput) { in.CarrierID = foreign.ID }, "0.01"),
		f.rated(func(in *RateRecordInput) { in.CarrierID = foreign.ID }, "999"),
	}, DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, opts)
	assert.Equal(t, 1, f.catalog.calls["carrier"], "carrier lookups are memoized per pass")
}

func TestAssembler_Integrations(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture()
	sendcloud := f.catalog.addCarrier("SendCloud", DefaultSystemName, CarrierKindSendCloud)
	rated := []RatedRecord{f.rated(func(in *RateRecordInput) { in.CarrierID = sendcloud.ID }, "5")}

	opts, err := f.assembler.Assemble(ctx, rated, DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, opts)

	policy := DefaultPolicy()
	policy.Integrations = []CarrierKind{CarrierKindSendCloud}
	opts, err = f.assembler.Assemble(ctx, rated, policy)
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestAssembler_LookupMisses(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture()
	cutOff, _ := NewCutOffTime("Order before 2pm", 0)
	f.catalog.cutOffs[cutOff.ID] = cutOff

	policy := DefaultPolicy()
	policy.DisplayCutOffTime = true

	opts, err := f.assembler.Assemble(ctx, []RatedRecord{
		f.rated(func(in *RateRecordInput) { in.CarrierID = uuid.New() }, "1"),
		f.rated(func(in *RateRecordInput) { in.ShippingMethodID = uuid.New() }, "2"),
		f.rated(func(in *RateRecordInput) { in.WarehouseID = uuid.New() }, "3"),
		f.rated(func(in *RateRecordInput) { in.CutOffTimeID = uuid.New() }, "4"),
		f.rated(func(in *RateRecordInput) { in.CutOffTimeID = cutOff.ID }, "5"),
	}, policy)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.True(t, dec("5").Equal(opts[0].Rate))
	assert.Equal(t, "3-5 business days Order before 2pm", opts[0].Description)
}

func TestAssembler_CutOffHiddenWhenDisabled(t *testing.T) {
	f := newAssemblerFixture()
	opts, err := f.assembler.Assemble(context.Background(), []RatedRecord{
		f.rated(func(in *RateRecordInput) { in.CutOffTimeID = uuid.New() }, "5"),
	}, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "3-5 business days", opts[0].Description)
	assert.Zero(t, f.catalog.calls["cutoff"])
}

func TestAssembler_ResultKinds(t *testing.T) {
	f := newAssemblerFixture()
	opts, err := f.assembler.Assemble(context.Background(), []RatedRecord{
		{ShippingMethodID: f.method.ID, Result: NotConfigured()},
		{ShippingMethodID: f.method.ID, Result: NoMatch()},
	}, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, RateResultNotConfigured, opts[0].Result)
	assert.True(t, opts[0].Rate.Equal(decimal.Zero))
	assert.Equal(t, "Ground", opts[0].Name)
}

func TestAssembler_PropagatesLookupFailure(t *testing.T) {
	f := newAssemblerFixture()
	boom := errors.New("carrier service down")
	f.catalog.failWith = boom

	opts, err := f.assembler.Assemble(context.Background(), []RatedRecord{f.rated(nil, "1")}, DefaultPolicy())
	assert.Nil(t, opts)
	assert.ErrorIs(t, err, boom)
}

func TestRatingPipeline_EndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture()
	country := uuid.New()

	inBand := newTestRecord(func(in *RateRecordInput) {
		in.WeightFrom, in.WeightTo = dec("10"), dec("20")
		in.CarrierID = f.carrier.ID
		in.ShippingMethodID = f.method.ID
		in.AdditionalFixedCost = dec("5")
		in.RatePerWeightUnit = dec("1")
		in.LowerWeightLimit = dec("0")
	})
	outOfBand := newTestRecord(func(in *RateRecordInput) {
		in.WeightFrom, in.WeightTo = dec("0"), dec("5")
		in.CarrierID = f.carrier.ID
		in.ShippingMethodID = f.method.ID
	})

	policy := DefaultPolicy()
	matcher := NewMatcher(&stubReader{records: []RateRecord{*inBand, *outOfBand}})
	q := RateQuery{CountryID: country, Zip: "90210", Subtotal: dec("150")}

	candidates, err := matcher.FindCandidates(ctx, q, policy)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	m := Measurements{Weight: dec("12")}
	survivors := FilterByWeight(candidates, m.Weight, m.Length, m.Width, m.Height)
	require.Len(t, survivors, 1)

	rated := make([]RatedRecord, 0, len(survivors))
	for i := range survivors {
		rec := &survivors[i]
		rated = append(rated, RatedRecord{Record: rec, Result: Calculate(rec, rec.BillableWeight(m), policy)})
	}

	opts, err := f.assembler.Assemble(ctx, rated, policy)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Carrier A", opts[0].CarrierName)
	assert.Equal(t, "17.00", opts[0].Rate.StringFixed(2))
}
