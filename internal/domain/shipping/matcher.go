package shipping

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// RateRecordReader is the read side of the rate record store used by live rating.
// Implementations may push any subset of RateQuery down to storage; the matcher
// re-checks every returned record.
type RateRecordReader interface {
	FindCandidates(ctx context.Context, q RateQuery) ([]RateRecord, error)
}

// Matcher selects the rate records whose scope matches a request.
type Matcher struct {
	reader RateRecordReader
	logger *zap.Logger
}

// MatcherOption configures a Matcher
type MatcherOption func(*Matcher)

// WithMatcherLogger sets the logger used in test mode
func WithMatcherLogger(logger *zap.Logger) MatcherOption {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// NewMatcher creates a matcher over reader
func NewMatcher(reader RateRecordReader, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		reader: reader,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindCandidates returns every record matching q, ordered by vendor, display
// order and creation time. Store errors are returned unchanged.
func (m *Matcher) FindCandidates(ctx context.Context, q RateQuery, policy Policy) ([]RateRecord, error) {
	if policy.IgnoreRegion {
		q.SkipRegion = true
	}

	records, err := m.reader.FindCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	matched := make([]RateRecord, 0, len(records))
	for i := range records {
		rec := &records[i]
		if reason := q.Mismatch(rec); reason != "" {
			if policy.TestMode {
				m.logger.Info("Rate record rejected",
					zap.String("record_id", rec.ID.String()),
					zap.String("dimension", reason),
				)
			}
			continue
		}
		if policy.TestMode {
			m.logger.Info("Rate record matched",
				zap.String("record_id", rec.ID.String()),
				zap.String("weight_from", rec.WeightFrom.String()),
				zap.String("weight_to", rec.WeightTo.String()),
			)
		}
		matched = append(matched, *rec)
	}

	SortRecords(matched)
	return matched, nil
}

// SortRecords orders records by vendor id, display order, then creation time.
func SortRecords(records []RateRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		if av, bv := a.VendorID.String(), b.VendorID.String(); av != bv {
			return av < bv
		}
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
