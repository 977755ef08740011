package shipping

import (
	"context"
	"time"

	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RatingService answers the two host calls of the rating engine:
// the option list of a shipment and the vendor's uniform fixed rate.
type RatingService struct {
	matcher   *shipping.Matcher
	assembler *shipping.Assembler
	methods   shipping.ShippingMethodLookup
	fixed     *shipping.FixedRateResolver
	converter *shipping.MeasureConverter
	policy    shipping.Policy
	logger    *zap.Logger
	metrics   *telemetry.RatingMetrics
}

// NewRatingService wires the engine to its collaborators. It fails when the
// policy names an unknown measure unit or packaging method.
func NewRatingService(
	records shipping.RateRecordReader,
	carriers shipping.CarrierLookup,
	methods shipping.ShippingMethodLookup,
	cutOffs shipping.CutOffTimeLookup,
	warehouses shipping.WarehouseLookup,
	settings shipping.SettingReader,
	policy shipping.Policy,
	log *zap.Logger,
) (*RatingService, error) {
	if log == nil {
		log = zap.NewNop()
	}
	converter, err := shipping.NewMeasureConverter(policy)
	if err != nil {
		return nil, err
	}
	engineLog := log.Named("rating")
	return &RatingService{
		matcher:   shipping.NewMatcher(records, shipping.WithMatcherLogger(engineLog)),
		assembler: shipping.NewAssembler(carriers, methods, cutOffs, warehouses, shipping.WithAssemblerLogger(engineLog)),
		methods:   methods,
		fixed:     shipping.NewFixedRateResolver(settings),
		converter: converter,
		policy:    policy,
		logger:    log,
	}, nil
}

// SetRatingMetrics sets the rating metrics collector
func (s *RatingService) SetRatingMetrics(m *telemetry.RatingMetrics) {
	s.metrics = m
}

// Policy returns the policy the service rates with
func (s *RatingService) Policy() shipping.Policy {
	return s.policy
}

func (s *RatingService) mode() string {
	if s.policy.WeightByTotalEnabled {
		return telemetry.RatingModeWeight
	}
	return telemetry.RatingModeFixed
}

// GetShippingOptions returns the options for one shipment. Input problems are
// reported in the response; only collaborator failures are returned as errors.
func (s *RatingService) GetShippingOptions(ctx context.Context, req GetShippingOptionsRequest) (resp *ShippingOptionsResponse, err error) {
	ctx = logger.WithRatingScope(ctx, scopeString(req.StoreID), scopeString(req.VendorID))
	ctx, span := telemetry.StartServiceSpan(ctx, "rating", "get_shipping_options",
		telemetry.SpanAttrStoreID, req.StoreID,
		telemetry.SpanAttrVendorID, req.VendorID,
		telemetry.SpanAttrItemCount, len(req.Items),
		telemetry.SpanAttrMode, s.mode(),
	)
	start := time.Now()
	defer func() {
		telemetry.RecordError(span, err)
		s.metrics.RecordRequest(ctx, s.mode(), time.Since(start), err)
		span.End()
	}()

	resp = &ShippingOptionsResponse{Options: []ShippingOptionResponse{}}
	if len(req.Items) == 0 {
		resp.AddError(shipping.MsgNoShipmentItems)
		return resp, nil
	}

	var options []shipping.CalculatedOption
	telemetry.WithProfilingLabels(ctx, telemetry.RatingLabels("get_shipping_options", s.mode()), func(ctx context.Context) {
		if !s.policy.WeightByTotalEnabled {
			options, err = s.fixedRateOptions(ctx, req)
			return
		}
		if req.ShippingAddress == nil {
			resp.AddError(shipping.MsgShippingAddressNil)
			return
		}
		options, err = s.weightOptions(ctx, span, req)
	})
	if err != nil {
		logger.Enrich(ctx, s.logger).Error("Failed to rate shipment", zap.Error(err))
		return nil, err
	}
	if !resp.Success() {
		return resp, nil
	}

	resp.Options = ToShippingOptionResponses(options)
	for i := range options {
		s.metrics.RecordOption(ctx, options[i].Result.String())
	}
	s.metrics.RecordCandidates(ctx, telemetry.StageOptions, len(options))
	if len(options) == 0 {
		s.metrics.RecordNoMatch(ctx)
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrOptionCount, len(options))
	logger.Enrich(ctx, s.logger).Debug("Shipping options calculated", zap.Int("count", len(options)))
	return resp, nil
}

func (s *RatingService) fixedRateOptions(ctx context.Context, req GetShippingOptionsRequest) ([]shipping.CalculatedOption, error) {
	methods, err := s.shippingMethods(ctx, req.ShippingMethodID)
	if err != nil {
		return nil, err
	}
	return s.fixed.Options(ctx, req.VendorID, methods)
}

func (s *RatingService) weightOptions(ctx context.Context, span trace.Span, req GetShippingOptionsRequest) ([]shipping.CalculatedOption, error) {
	items := make([]shipping.ShipmentItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = shipping.ShipmentItem{
			Quantity:      it.Quantity,
			Weight:        it.Weight,
			Length:        it.Length,
			Width:         it.Width,
			Height:        it.Height,
			WeightUnit:    it.WeightUnit,
			DimensionUnit: it.DimensionUnit,
		}
	}
	m, err := s.converter.Measure(items)
	if err != nil {
		return nil, err
	}

	q := shipping.RateQuery{
		StoreID:         req.StoreID,
		VendorID:        req.VendorID,
		WarehouseID:     req.WarehouseID,
		CountryID:       req.ShippingAddress.CountryID,
		StateProvinceID: req.ShippingAddress.StateProvinceID,
		Zip:             req.ShippingAddress.Zip,
		Subtotal:        req.Subtotal,
	}
	if req.ShippingMethodID != nil {
		q.ShippingMethodID = *req.ShippingMethodID
	}

	matched, err := s.matcher.FindCandidates(ctx, q, s.policy)
	if err != nil {
		return nil, err
	}
	kept := shipping.FilterByWeight(matched, m.Weight, m.Length, m.Width, m.Height)
	s.metrics.RecordCandidates(ctx, telemetry.StageMatched, len(matched))
	s.metrics.RecordCandidates(ctx, telemetry.StageWeightFiltered, len(kept))
	telemetry.SetAttributes(span, telemetry.SpanAttrCandidateCount, len(kept))

	methods, err := s.shippingMethods(ctx, req.ShippingMethodID)
	if err != nil {
		return nil, err
	}
	rated := s.rate(kept, methods, m)
	return s.assembler.Assemble(ctx, rated, s.policy)
}

// rate prices every surviving record. A record without a shipping method
// quotes every method in scope; methods nothing quoted are passed through the
// calculator without a record so the limit-to-created policy decides them.
func (s *RatingService) rate(kept []shipping.RateRecord, methods []shipping.ShippingMethod, m shipping.Measurements) []shipping.RatedRecord {
	rated := make([]shipping.RatedRecord, 0, len(kept)+len(methods))
	covered := make(map[uuid.UUID]bool, len(methods))

	for i := range kept {
		rec := &kept[i]
		result := shipping.Calculate(rec, rec.BillableWeight(m), s.policy)
		if rec.ShippingMethodID != uuid.Nil {
			rated = append(rated, shipping.RatedRecord{Record: rec, ShippingMethodID: rec.ShippingMethodID, Result: result})
			covered[rec.ShippingMethodID] = true
			continue
		}
		for j := range methods {
			rated = append(rated, shipping.RatedRecord{Record: rec, ShippingMethodID: methods[j].ID, Result: result})
			covered[methods[j].ID] = true
		}
	}

	for j := range methods {
		if covered[methods[j].ID] {
			continue
		}
		rated = append(rated, shipping.RatedRecord{
			ShippingMethodID: methods[j].ID,
			Result:           shipping.Calculate(nil, m.Weight, s.policy),
		})
	}
	return rated
}

// shippingMethods lists the methods in scope: the preferred one when given,
// all methods otherwise. An unknown preferred method yields none.
func (s *RatingService) shippingMethods(ctx context.Context, preferred *uuid.UUID) ([]shipping.ShippingMethod, error) {
	all, err := s.methods.ListShippingMethods(ctx)
	if err != nil {
		return nil, err
	}
	if preferred == nil || *preferred == uuid.Nil {
		return all, nil
	}
	for i := range all {
		if all[i].ID == *preferred {
			return all[i : i+1], nil
		}
	}
	return nil, nil
}

// GetFixedRate returns the vendor's flat rate when every shipping method
// resolves to the same amount. Weight mode is always NotConfigured.
func (s *RatingService) GetFixedRate(ctx context.Context, req GetFixedRateRequest) (result shipping.RateResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rating", "get_fixed_rate",
		telemetry.SpanAttrVendorID, req.VendorID,
		telemetry.SpanAttrMode, s.mode(),
	)
	start := time.Now()
	defer func() {
		telemetry.RecordError(span, err)
		s.metrics.RecordRequest(ctx, s.mode(), time.Since(start), err)
		span.End()
	}()

	if s.policy.WeightByTotalEnabled {
		return shipping.NotConfigured(), nil
	}

	telemetry.WithProfilingLabels(ctx, telemetry.RatingLabels("get_fixed_rate", s.mode()), func(ctx context.Context) {
		var methods []shipping.ShippingMethod
		methods, err = s.methods.ListShippingMethods(ctx)
		if err != nil {
			return
		}
		result, err = s.fixed.UniformRate(ctx, req.VendorID, methods)
	})
	if err != nil {
		logger.Enrich(ctx, s.logger).Error("Failed to resolve fixed rate",
			zap.String("vendor_id", req.VendorID.String()), zap.Error(err))
		return shipping.NotConfigured(), err
	}
	return result, nil
}

func scopeString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
