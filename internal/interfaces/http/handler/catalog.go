package handler

import (
	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the reference data behind rate records
type CatalogHandler struct {
	BaseHandler
	catalogService *shippingapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *shippingapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateCarrier godoc
// @ID           createCarrier
// @Summary      Create a carrier
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.CreateCarrierRequest true "Carrier"
// @Success      201 {object} APIResponse[shippingapp.CarrierResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/carriers [post]
func (h *CatalogHandler) CreateCarrier(c *gin.Context) {
	var req shippingapp.CreateCarrierRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateCarrier(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetCarrier godoc
// @ID           getCarrier
// @Summary      Get a carrier
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} APIResponse[shippingapp.CarrierResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/carriers/{id} [get]
func (h *CatalogHandler) GetCarrier(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.catalogService.GetCarrier(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListCarriers godoc
// @ID           listCarriers
// @Summary      List carriers
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Name search"
// @Param        active query bool false "Active flag"
// @Success      200 {object} APIResponse[[]shippingapp.CarrierResponse]
// @Security     BearerAuth
// @Router       /shipping/carriers [get]
func (h *CatalogHandler) ListCarriers(c *gin.Context) {
	var filter shippingapp.CarrierListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	resp, err := h.catalogService.ListCarriers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateShippingMethod godoc
// @ID           createShippingMethod
// @Summary      Create a shipping method
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.CreateShippingMethodRequest true "Shipping method"
// @Success      201 {object} APIResponse[shippingapp.ShippingMethodResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/methods [post]
func (h *CatalogHandler) CreateShippingMethod(c *gin.Context) {
	var req shippingapp.CreateShippingMethodRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateShippingMethod(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListShippingMethods godoc
// @ID           listShippingMethods
// @Summary      List shipping methods
// @Tags         catalog
// @Produce      json
// @Success      200 {object} APIResponse[[]shippingapp.ShippingMethodResponse]
// @Security     BearerAuth
// @Router       /shipping/methods [get]
func (h *CatalogHandler) ListShippingMethods(c *gin.Context) {
	resp, err := h.catalogService.ListShippingMethods(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateCutOffTime godoc
// @ID           createCutOffTime
// @Summary      Create a cut-off time
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.CreateCutOffTimeRequest true "Cut-off time"
// @Success      201 {object} APIResponse[shippingapp.CutOffTimeResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/cutoff-times [post]
func (h *CatalogHandler) CreateCutOffTime(c *gin.Context) {
	var req shippingapp.CreateCutOffTimeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateCutOffTime(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListCutOffTimes godoc
// @ID           listCutOffTimes
// @Summary      List cut-off times
// @Tags         catalog
// @Produce      json
// @Success      200 {object} APIResponse[[]shippingapp.CutOffTimeResponse]
// @Security     BearerAuth
// @Router       /shipping/cutoff-times [get]
func (h *CatalogHandler) ListCutOffTimes(c *gin.Context) {
	resp, err := h.catalogService.ListCutOffTimes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateWarehouse godoc
// @ID           createWarehouse
// @Summary      Create a warehouse
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.CreateWarehouseRequest true "Warehouse"
// @Success      201 {object} APIResponse[shippingapp.WarehouseResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/warehouses [post]
func (h *CatalogHandler) CreateWarehouse(c *gin.Context) {
	var req shippingapp.CreateWarehouseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.CreateWarehouse(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListWarehouses godoc
// @ID           listWarehouses
// @Summary      List warehouses
// @Tags         catalog
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        search query string false "Name search"
// @Success      200 {object} APIResponse[[]shippingapp.WarehouseResponse]
// @Security     BearerAuth
// @Router       /shipping/warehouses [get]
func (h *CatalogHandler) ListWarehouses(c *gin.Context) {
	var filter shippingapp.WarehouseListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	resp, err := h.catalogService.ListWarehouses(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetFixedRate godoc
// @ID           setFixedRate
// @Summary      Store a fixed rate
// @Description  Stores the flat rate and optional transit days of a vendor and shipping method.
// @Description  A zero vendor_id addresses the store-wide setting.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.SetFixedRateRequest true "Fixed rate"
// @Success      200 {object} APIResponse[shippingapp.FixedRateSettingResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/fixed-rates [put]
func (h *CatalogHandler) SetFixedRate(c *gin.Context) {
	var req shippingapp.SetFixedRateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.catalogService.SetFixedRate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetFixedRate godoc
// @ID           getFixedRateSetting
// @Summary      Read a stored fixed rate
// @Tags         catalog
// @Produce      json
// @Param        vendor_id query string false "Vendor ID" format(uuid)
// @Param        method_id query string true "Shipping method ID" format(uuid)
// @Success      200 {object} APIResponse[shippingapp.FixedRateSettingResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/fixed-rates [get]
func (h *CatalogHandler) GetFixedRate(c *gin.Context) {
	vendorID, ok := h.queryID(c, "vendor_id")
	if !ok {
		return
	}
	methodID, ok := h.queryID(c, "method_id")
	if !ok {
		return
	}
	if methodID == uuid.Nil {
		h.BadRequest(c, "method_id is required")
		return
	}
	resp, err := h.catalogService.GetFixedRate(c.Request.Context(), vendorID, methodID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
