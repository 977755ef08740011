package shipping

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the reference data rate records point at:
// carriers, shipping methods, cut-off times, warehouses and fixed rates.
type CatalogService struct {
	carrierRepo   shipping.CarrierRepository
	methodRepo    shipping.ShippingMethodRepository
	cutOffRepo    shipping.CutOffTimeRepository
	warehouseRepo shipping.WarehouseRepository
	settings      shipping.SettingStore
	fixed         *shipping.FixedRateResolver
	systemName    string
	logger        *zap.Logger
}

// NewCatalogService creates a new CatalogService. systemName is stamped on
// carriers created without one.
func NewCatalogService(
	carrierRepo shipping.CarrierRepository,
	methodRepo shipping.ShippingMethodRepository,
	cutOffRepo shipping.CutOffTimeRepository,
	warehouseRepo shipping.WarehouseRepository,
	settings shipping.SettingStore,
	systemName string,
	log *zap.Logger,
) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	if systemName == "" {
		systemName = shipping.DefaultSystemName
	}
	return &CatalogService{
		carrierRepo:   carrierRepo,
		methodRepo:    methodRepo,
		cutOffRepo:    cutOffRepo,
		warehouseRepo: warehouseRepo,
		settings:      settings,
		fixed:         shipping.NewFixedRateResolver(settings),
		systemName:    systemName,
		logger:        log,
	}
}

// CreateCarrier creates a carrier
func (s *CatalogService) CreateCarrier(ctx context.Context, req CreateCarrierRequest) (*CarrierResponse, error) {
	kind := shipping.CarrierKindGeneric
	if strings.TrimSpace(req.Kind) != "" {
		var err error
		if kind, err = shipping.ParseCarrierKind(req.Kind); err != nil {
			return nil, err
		}
	}
	systemName := req.SystemName
	if strings.TrimSpace(systemName) == "" {
		systemName = s.systemName
	}

	carrier, err := shipping.NewCarrier(req.Name, systemName, kind)
	if err != nil {
		return nil, err
	}
	carrier.DisplayOrder = req.DisplayOrder
	if req.Active != nil && !*req.Active {
		carrier.Deactivate()
	}
	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	logger.Enrich(ctx, s.logger).Info("Carrier created",
		zap.String("carrier_id", carrier.ID.String()),
		zap.String("kind", carrier.Kind.String()),
	)
	resp := ToCarrierResponse(carrier)
	return &resp, nil
}

// GetCarrier retrieves a carrier by ID
func (s *CatalogService) GetCarrier(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.GetCarrier(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCarrierResponse(carrier)
	return &resp, nil
}

// ListCarriers lists carriers in display order
func (s *CatalogService) ListCarriers(ctx context.Context, filter CarrierListFilter) ([]CarrierResponse, error) {
	domainFilter := shared.Filter{
		Search:  filter.Search,
		Filters: make(map[string]interface{}),
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}

	carriers, err := s.carrierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	out := make([]CarrierResponse, len(carriers))
	for i := range carriers {
		out[i] = ToCarrierResponse(&carriers[i])
	}
	return out, nil
}

// CreateShippingMethod creates a shipping method
func (s *CatalogService) CreateShippingMethod(ctx context.Context, req CreateShippingMethodRequest) (*ShippingMethodResponse, error) {
	method, err := shipping.NewShippingMethod(req.Name, req.Description, req.DisplayOrder)
	if err != nil {
		return nil, err
	}
	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}
	resp := ToShippingMethodResponse(method)
	return &resp, nil
}

// ListShippingMethods lists shipping methods in display order
func (s *CatalogService) ListShippingMethods(ctx context.Context) ([]ShippingMethodResponse, error) {
	methods, err := s.methodRepo.ListShippingMethods(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ShippingMethodResponse, len(methods))
	for i := range methods {
		out[i] = ToShippingMethodResponse(&methods[i])
	}
	return out, nil
}

// CreateCutOffTime creates a cut-off time
func (s *CatalogService) CreateCutOffTime(ctx context.Context, req CreateCutOffTimeRequest) (*CutOffTimeResponse, error) {
	cutOff, err := shipping.NewCutOffTime(req.Name, req.DisplayOrder)
	if err != nil {
		return nil, err
	}
	if err := s.cutOffRepo.Save(ctx, cutOff); err != nil {
		return nil, err
	}
	resp := ToCutOffTimeResponse(cutOff)
	return &resp, nil
}

// ListCutOffTimes lists cut-off times in display order
func (s *CatalogService) ListCutOffTimes(ctx context.Context) ([]CutOffTimeResponse, error) {
	cutOffs, err := s.cutOffRepo.ListCutOffTimes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CutOffTimeResponse, len(cutOffs))
	for i := range cutOffs {
		out[i] = ToCutOffTimeResponse(&cutOffs[i])
	}
	return out, nil
}

// CreateWarehouse creates a warehouse
func (s *CatalogService) CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := shipping.NewWarehouse(req.Name, req.CountryID)
	if err != nil {
		return nil, err
	}
	if req.AddressLine != "" || req.City != "" || req.Zip != "" || req.StateProvinceID != uuid.Nil {
		warehouse.SetAddress(req.AddressLine, req.City, req.StateProvinceID, req.Zip)
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// ListWarehouses lists warehouses
func (s *CatalogService) ListWarehouses(ctx context.Context, filter WarehouseListFilter) ([]WarehouseResponse, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		OrderBy:  "name",
		Filters:  make(map[string]interface{}),
	}
	warehouses, err := s.warehouseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	out := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		out[i] = ToWarehouseResponse(&warehouses[i])
	}
	return out, nil
}

// SetFixedRate stores the flat rate and transit days of a vendor and method.
// A nil TransitDays clears the stored value.
func (s *CatalogService) SetFixedRate(ctx context.Context, req SetFixedRateRequest) (*FixedRateSettingResponse, error) {
	if req.Rate.IsNegative() {
		return nil, shipping.ErrInvalidRate
	}
	if req.TransitDays != nil && *req.TransitDays < 0 {
		return nil, shared.NewDomainError("INVALID_TRANSIT_DAYS", "Transit days cannot be negative")
	}
	if _, err := s.methodRepo.GetShippingMethod(ctx, req.ShippingMethodID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SHIPPING_METHOD", "Shipping method not found")
		}
		return nil, err
	}

	rateKey := shipping.FixedRateKey(req.VendorID, req.ShippingMethodID)
	if err := s.settings.SetSetting(ctx, rateKey, req.Rate.String()); err != nil {
		return nil, err
	}
	days := ""
	if req.TransitDays != nil {
		days = strconv.Itoa(*req.TransitDays)
	}
	if err := s.settings.SetSetting(ctx, shipping.FixedTransitDaysKey(req.VendorID, req.ShippingMethodID), days); err != nil {
		return nil, err
	}

	logger.Enrich(ctx, s.logger).Info("Fixed rate stored",
		zap.String("key", rateKey),
		zap.String("rate", req.Rate.String()),
	)
	return &FixedRateSettingResponse{
		VendorID:         req.VendorID,
		ShippingMethodID: req.ShippingMethodID,
		Rate:             req.Rate,
		TransitDays:      req.TransitDays,
	}, nil
}

// GetFixedRate reads the stored flat rate of a vendor and method.
// Missing settings read as a zero rate and no transit days.
func (s *CatalogService) GetFixedRate(ctx context.Context, vendorID, methodID uuid.UUID) (*FixedRateSettingResponse, error) {
	rate, err := s.fixed.Rate(ctx, vendorID, methodID)
	if err != nil {
		return nil, err
	}
	days, err := s.fixed.TransitDays(ctx, vendorID, methodID)
	if err != nil {
		return nil, err
	}
	return &FixedRateSettingResponse{
		VendorID:         vendorID,
		ShippingMethodID: methodID,
		Rate:             rate,
		TransitDays:      days,
	}, nil
}
