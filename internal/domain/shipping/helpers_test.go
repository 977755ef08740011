package shipping

import (
	"context"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int {
	return &v
}

// newTestRecord returns an active, all-wildcard record with a wide band.
func newTestRecord(mutate func(*RateRecordInput)) *RateRecord {
	in := RateRecordInput{
		Active:            true,
		WeightFrom:        dec("0"),
		WeightTo:          dec("1000"),
		OrderSubtotalFrom: dec("0"),
		OrderSubtotalTo:   dec("1000000"),
	}
	if mutate != nil {
		mutate(&in)
	}
	rec, err := NewRateRecord(in)
	if err != nil {
		panic(err)
	}
	return rec
}

type stubReader struct {
	records []RateRecord
	err     error
	queries []RateQuery
}

func (s *stubReader) FindCandidates(_ context.Context, q RateQuery) ([]RateRecord, error) {
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]RateRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

type memCatalog struct {
	carriers   map[uuid.UUID]*Carrier
	methods    map[uuid.UUID]*ShippingMethod
	cutOffs    map[uuid.UUID]*CutOffTime
	warehouses map[uuid.UUID]*Warehouse
	calls      map[string]int
	failWith   error
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		carriers:   make(map[uuid.UUID]*Carrier),
		methods:    make(map[uuid.UUID]*ShippingMethod),
		cutOffs:    make(map[uuid.UUID]*CutOffTime),
		warehouses: make(map[uuid.UUID]*Warehouse),
		calls:      make(map[string]int),
	}
}

func (c *memCatalog) GetCarrier(_ context.Context, id uuid.UUID) (*Carrier, error) {
	c.calls["carrier"]++
	if c.failWith != nil {
		return nil, c.failWith
	}
	if v, ok := c.carriers[id]; ok {
		return v, nil
	}
	return nil, shared.ErrNotFound
}

func (c *memCatalog) GetShippingMethod(_ context.Context, id uuid.UUID) (*ShippingMethod, error) {
	c.calls["method"]++
	if v, ok := c.methods[id]; ok {
		return v, nil
	}
	return nil, shared.ErrNotFound
}

func (c *memCatalog) ListShippingMethods(_ context.Context) ([]ShippingMethod, error) {
	out := make([]ShippingMethod, 0, len(c.methods))
	for _, m := range c.methods {
		out = append(out, *m)
	}
	return out, nil
}

func (c *memCatalog) GetCutOffTime(_ context.Context, id uuid.UUID) (*CutOffTime, error) {
	c.calls["cutoff"]++
	if v, ok := c.cutOffs[id]; ok {
		return v, nil
	}
	return nil, shared.ErrNotFound
}

func (c *memCatalog) GetWarehouse(_ context.Context, id uuid.UUID) (*Warehouse, error) {
	c.calls["warehouse"]++
	if v, ok := c.warehouses[id]; ok {
		return v, nil
	}
	return nil, shared.ErrNotFound
}

func (c *memCatalog) addCarrier(name, systemName string, kind CarrierKind) *Carrier {
	carrier, err := NewCarrier(name, systemName, kind)
	if err != nil {
		panic(err)
	}
	c.carriers[carrier.ID] = carrier
	return carrier
}

func (c *memCatalog) addMethod(name, description string) *ShippingMethod {
	m, err := NewShippingMethod(name, description, 0)
	if err != nil {
		panic(err)
	}
	c.methods[m.ID] = m
	return m
}

type memSettings map[string]string

func (m memSettings) GetSetting(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}
