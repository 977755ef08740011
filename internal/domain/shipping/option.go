package shipping

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CalculatedOption is one shipping option offered to the checkout.
type CalculatedOption struct {
	RateRecordID       uuid.UUID
	CarrierID          uuid.UUID
	CarrierName        string
	ShippingMethodID   uuid.UUID
	ShippingMethodName string
	Name               string
	Description        string
	Rate               decimal.Decimal
	TransitDays        *int
	Result             RateResultKind
}

// RatedRecord pairs a surviving record with its calculated result.
// Record is nil for a shipping method that no record covered.
type RatedRecord struct {
	Record           *RateRecord
	ShippingMethodID uuid.UUID
	Result           RateResult
}

// Assembler turns rated records into options using the catalog lookups.
type Assembler struct {
	carriers   CarrierLookup
	methods    ShippingMethodLookup
	cutOffs    CutOffTimeLookup
	warehouses WarehouseLookup
	logger     *zap.Logger
}

// AssemblerOption configures an Assembler
type AssemblerOption func(*Assembler)

// WithAssemblerLogger sets the logger used in test mode
func WithAssemblerLogger(logger *zap.Logger) AssemblerOption {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// NewAssembler creates an assembler
func NewAssembler(
	carriers CarrierLookup,
	methods ShippingMethodLookup,
	cutOffs CutOffTimeLookup,
	warehouses WarehouseLookup,
	opts ...AssemblerOption,
) *Assembler {
	a := &Assembler{
		carriers:   carriers,
		methods:    methods,
		cutOffs:    cutOffs,
		warehouses: warehouses,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the option list. Candidates with a missing carrier, method,
// warehouse or cut-off time are skipped, as are carriers owned by another
// rating system or by a disabled integration. Any other lookup error aborts.
func (a *Assembler) Assemble(ctx context.Context, rated []RatedRecord, policy Policy) ([]CalculatedOption, error) {
	pass := newLookupPass(a)
	options := make([]CalculatedOption, 0, len(rated))

	for i := range rated {
		opt, ok, err := a.assembleOne(ctx, pass, &rated[i], policy)
		if err != nil {
			return nil, err
		}
		if ok {
			options = append(options, opt)
		}
	}
	return options, nil
}

func (a *Assembler) assembleOne(ctx context.Context, pass *lookupPass, item *RatedRecord, policy Policy) (CalculatedOption, bool, error) {
	amount, offered := item.Result.Amount()
	if !offered {
		return CalculatedOption{}, false, nil
	}

	rec := item.Record
	methodID := item.ShippingMethodID
	if methodID == uuid.Nil && rec != nil {
		methodID = rec.ShippingMethodID
	}

	opt := CalculatedOption{
		ShippingMethodID: methodID,
		Rate:             amount,
		Result:           item.Result.Kind(),
	}

	if rec != nil {
		opt.RateRecordID = rec.ID
		opt.TransitDays = rec.TransitDays

		if rec.CarrierID != uuid.Nil {
			carrier, err := pass.carrier(ctx, rec.CarrierID)
			if skip, err := a.miss(err, "carrier", rec, policy); skip || err != nil {
				return CalculatedOption{}, false, err
			}
			if reason := carrierRejection(carrier, policy); reason != "" {
				a.trace(policy, "Carrier rejected", rec, reason)
				return CalculatedOption{}, false, nil
			}
			opt.CarrierID = carrier.ID
			opt.CarrierName = carrier.Name
		}

		if rec.WarehouseID != uuid.Nil {
			_, err := pass.warehouse(ctx, rec.WarehouseID)
			if skip, err := a.miss(err, "warehouse", rec, policy); skip || err != nil {
				return CalculatedOption{}, false, err
			}
		}
	}

	method, err := pass.method(ctx, methodID)
	if skip, err := a.miss(err, "shipping_method", rec, policy); skip || err != nil {
		return CalculatedOption{}, false, err
	}
	opt.ShippingMethodName = method.Name
	opt.Name = optionName(opt.CarrierName, method.Name)

	opt.Description = method.Description
	if rec != nil && rec.Description != "" {
		opt.Description = rec.Description
	}

	if policy.DisplayCutOffTime && rec != nil && rec.CutOffTimeID != uuid.Nil {
		cutOff, err := pass.cutOff(ctx, rec.CutOffTimeID)
		if skip, err := a.miss(err, "cutoff_time", rec, policy); skip || err != nil {
			return CalculatedOption{}, false, err
		}
		opt.Description = strings.TrimSpace(opt.Description + " " + cutOff.Name)
	}

	return opt, true, nil
}

// miss classifies a lookup error: not-found skips the candidate, anything else propagates.
func (a *Assembler) miss(err error, what string, rec *RateRecord, policy Policy) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		a.trace(policy, "Lookup missed, candidate skipped", rec, what)
		return true, nil
	}
	return false, err
}

func (a *Assembler) trace(policy Policy, msg string, rec *RateRecord, reason string) {
	if !policy.TestMode {
		return
	}
	fields := []zap.Field{zap.String("reason", reason)}
	if rec != nil {
		fields = append(fields, zap.String("record_id", rec.ID.String()))
	}
	a.logger.Info(msg, fields...)
}

func carrierRejection(c *Carrier, policy Policy) string {
	if c.ComputationMethodSystemName != policy.SystemName {
		return "system_name"
	}
	if !c.Active {
		return "inactive"
	}
	if !policy.IntegrationEnabled(c.Kind) {
		return "integration_disabled"
	}
	return ""
}

func optionName(carrierName, methodName string) string {
	if carrierName == "" {
		return methodName
	}
	return carrierName + " - " + methodName
}

// lookupPass memoizes catalog lookups for one Assemble call, misses included.
type lookupPass struct {
	a          *Assembler
	carriers   map[uuid.UUID]lookupResult[*Carrier]
	methods    map[uuid.UUID]lookupResult[*ShippingMethod]
	cutOffs    map[uuid.UUID]lookupResult[*CutOffTime]
	warehouses map[uuid.UUID]lookupResult[*Warehouse]
}

type lookupResult[T any] struct {
	value T
	err   error
}

func newLookupPass(a *Assembler) *lookupPass {
	return &lookupPass{
		a:          a,
		carriers:   make(map[uuid.UUID]lookupResult[*Carrier]),
		methods:    make(map[uuid.UUID]lookupResult[*ShippingMethod]),
		cutOffs:    make(map[uuid.UUID]lookupResult[*CutOffTime]),
		warehouses: make(map[uuid.UUID]lookupResult[*Warehouse]),
	}
}

func memoize[T any](ctx context.Context, cache map[uuid.UUID]lookupResult[T], id uuid.UUID, fetch func(context.Context, uuid.UUID) (T, error)) (T, error) {
	if r, ok := cache[id]; ok {
		return r.value, r.err
	}
	v, err := fetch(ctx, id)
	cache[id] = lookupResult[T]{value: v, err: err}
	return v, err
}

func (p *lookupPass) carrier(ctx context.Context, id uuid.UUID) (*Carrier, error) {
	return memoize(ctx, p.carriers, id, p.a.carriers.GetCarrier)
}

func (p *lookupPass) method(ctx context.Context, id uuid.UUID) (*ShippingMethod, error) {
	return memoize(ctx, p.methods, id, p.a.methods.GetShippingMethod)
}

func (p *lookupPass) cutOff(ctx context.Context, id uuid.UUID) (*CutOffTime, error) {
	return memoize(ctx, p.cutOffs, id, p.a.cutOffs.GetCutOffTime)
}

func (p *lookupPass) warehouse(ctx context.Context, id uuid.UUID) (*Warehouse, error) {
	return memoize(ctx, p.warehouses, id, p.a.warehouses.GetWarehouse)
}
