package shipping

import (
	"context"
	"errors"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RateRecordService handles administration of rate records
type RateRecordService struct {
	recordRepo shipping.RateRecordRepository
	carriers   shipping.CarrierLookup
	methods    shipping.ShippingMethodLookup
	logger     *zap.Logger
}

// NewRateRecordService creates a new RateRecordService
func NewRateRecordService(
	recordRepo shipping.RateRecordRepository,
	carriers shipping.CarrierLookup,
	methods shipping.ShippingMethodLookup,
	log *zap.Logger,
) *RateRecordService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RateRecordService{
		recordRepo: recordRepo,
		carriers:   carriers,
		methods:    methods,
		logger:     log,
	}
}

// Create creates a new rate record
func (s *RateRecordService) Create(ctx context.Context, req RateRecordRequest) (*RateRecordResponse, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	record, err := shipping.NewRateRecord(req.toInput())
	if err != nil {
		return nil, err
	}
	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	logger.Enrich(ctx, s.logger).Info("Rate record created",
		zap.String("record_id", record.ID.String()),
		zap.String("shipping_method_id", record.ShippingMethodID.String()),
	)
	resp := ToRateRecordResponse(record)
	return &resp, nil
}

// Update replaces every field of an existing rate record
func (s *RateRecordService) Update(ctx context.Context, id uuid.UUID, req RateRecordRequest) (*RateRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	if err := record.Update(req.toInput()); err != nil {
		return nil, err
	}
	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	logger.Enrich(ctx, s.logger).Info("Rate record updated",
		zap.String("record_id", record.ID.String()),
		zap.Int("version", record.Version),
	)
	resp := ToRateRecordResponse(record)
	return &resp, nil
}

// Delete deletes a rate record
func (s *RateRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Enrich(ctx, s.logger).Info("Rate record deleted", zap.String("record_id", id.String()))
	return nil
}

// GetByID retrieves a rate record by ID
func (s *RateRecordService) GetByID(ctx context.Context, id uuid.UUID) (*RateRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRateRecordResponse(record)
	return &resp, nil
}

// List retrieves a page of rate records, inactive ones included
func (s *RateRecordService) List(ctx context.Context, filter RateRecordListFilter) (*shared.Paginated[RateRecordResponse], error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "display_order"
	domainFilter.OrderDir = "asc"
	domainFilter.Search = filter.Search

	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		}
	}

	for key, raw := range map[string]string{
		"store_id":           filter.StoreID,
		"vendor_id":          filter.VendorID,
		"carrier_id":         filter.CarrierID,
		"shipping_method_id": filter.ShippingMethodID,
	} {
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid "+key)
		}
		domainFilter.Filters[key] = id
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}

	records, err := s.recordRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.recordRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]RateRecordResponse, len(records))
	for i := range records {
		items[i] = ToRateRecordResponse(&records[i])
	}
	page := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// checkReferences verifies that non-wildcard carrier and method ids exist
func (s *RateRecordService) checkReferences(ctx context.Context, req RateRecordRequest) error {
	if req.CarrierID != uuid.Nil {
		if _, err := s.carriers.GetCarrier(ctx, req.CarrierID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_CARRIER", "Carrier not found")
			}
			return err
		}
	}
	if req.ShippingMethodID != uuid.Nil {
		if _, err := s.methods.GetShippingMethod(ctx, req.ShippingMethodID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_SHIPPING_METHOD", "Shipping method not found")
			}
			return err
		}
	}
	return nil
}
