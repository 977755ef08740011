package shipping

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	fixedRateKeyPrefix        = "shippingmanager.fixedrate.rate"
	fixedTransitDaysKeyPrefix = "shippingmanager.fixedrate.transitdays"
)

// FixedRateKey is the settings key holding the flat rate of a method for a vendor.
func FixedRateKey(vendorID, methodID uuid.UUID) string {
	return fmt.Sprintf("%s.vendor_%s.method_%s", fixedRateKeyPrefix, vendorID, methodID)
}

// FixedTransitDaysKey is the settings key holding transit days of a method for a vendor.
func FixedTransitDaysKey(vendorID, methodID uuid.UUID) string {
	return fmt.Sprintf("%s.vendor_%s.method_%s", fixedTransitDaysKeyPrefix, vendorID, methodID)
}

// FixedRateResolver implements fixed-rate mode on top of a settings store.
type FixedRateResolver struct {
	settings SettingReader
}

// NewFixedRateResolver creates a resolver
func NewFixedRateResolver(settings SettingReader) *FixedRateResolver {
	return &FixedRateResolver{settings: settings}
}

// Rate returns the flat rate for a method; a missing key is zero.
func (r *FixedRateResolver) Rate(ctx context.Context, vendorID, methodID uuid.UUID) (decimal.Decimal, error) {
	key := FixedRateKey(vendorID, methodID)
	raw, ok, err := r.settings.GetSetting(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_SETTING", fmt.Sprintf("Setting %s is not a decimal", key))
	}
	return decimal.Max(v, decimal.Zero), nil
}

// TransitDays returns the configured transit days, or nil when unset.
func (r *FixedRateResolver) TransitDays(ctx context.Context, vendorID, methodID uuid.UUID) (*int, error) {
	key := FixedTransitDaysKey(vendorID, methodID)
	raw, ok, err := r.settings.GetSetting(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SETTING", fmt.Sprintf("Setting %s is not an integer", key))
	}
	return &days, nil
}

// Options emits one option per shipping method at its flat rate.
func (r *FixedRateResolver) Options(ctx context.Context, vendorID uuid.UUID, methods []ShippingMethod) ([]CalculatedOption, error) {
	options := make([]CalculatedOption, 0, len(methods))
	for i := range methods {
		m := &methods[i]
		rate, err := r.Rate(ctx, vendorID, m.ID)
		if err != nil {
			return nil, err
		}
		days, err := r.TransitDays(ctx, vendorID, m.ID)
		if err != nil {
			return nil, err
		}
		options = append(options, CalculatedOption{
			ShippingMethodID:   m.ID,
			ShippingMethodName: m.Name,
			Name:               m.Name,
			Description:        m.Description,
			Rate:               rate,
			TransitDays:        days,
			Result:             RateResultRate,
		})
	}
	return options, nil
}

// UniformRate returns Rate(v) only when every method resolves to the same v.
func (r *FixedRateResolver) UniformRate(ctx context.Context, vendorID uuid.UUID, methods []ShippingMethod) (RateResult, error) {
	if len(methods) == 0 {
		return NotConfigured(), nil
	}
	var first decimal.Decimal
	for i := range methods {
		rate, err := r.Rate(ctx, vendorID, methods[i].ID)
		if err != nil {
			return NotConfigured(), err
		}
		if i == 0 {
			first = rate
			continue
		}
		if !rate.Equal(first) {
			return NotConfigured(), nil
		}
	}
	return Rate(first), nil
}
