package handler

import (
	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/gin-gonic/gin"
)

// RateRecordHandler handles rate record administration
type RateRecordHandler struct {
	BaseHandler
	recordService *shippingapp.RateRecordService
}

// NewRateRecordHandler creates a new RateRecordHandler
func NewRateRecordHandler(recordService *shippingapp.RateRecordService) *RateRecordHandler {
	return &RateRecordHandler{recordService: recordService}
}

// Create godoc
// @ID           createRateRecord
// @Summary      Create a rate record
// @Tags         rate-records
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.RateRecordRequest true "Rate record"
// @Success      201 {object} APIResponse[shippingapp.RateRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/rate-records [post]
func (h *RateRecordHandler) Create(c *gin.Context) {
	var req shippingapp.RateRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.recordService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID godoc
// @ID           getRateRecord
// @Summary      Get a rate record
// @Tags         rate-records
// @Produce      json
// @Param        id path string true "Rate record ID" format(uuid)
// @Success      200 {object} APIResponse[shippingapp.RateRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/rate-records/{id} [get]
func (h *RateRecordHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.recordService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List godoc
// @ID           listRateRecords
// @Summary      List rate records
// @Description  Lists rate records in display order, inactive ones included
// @Tags         rate-records
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        sort_by query string false "Sort column"
// @Param        sort_desc query bool false "Sort descending"
// @Param        search query string false "Zip pattern search"
// @Param        store_id query string false "Store ID" format(uuid)
// @Param        vendor_id query string false "Vendor ID" format(uuid)
// @Param        carrier_id query string false "Carrier ID" format(uuid)
// @Param        shipping_method_id query string false "Shipping method ID" format(uuid)
// @Param        active query bool false "Active flag"
// @Success      200 {object} APIResponse[[]shippingapp.RateRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/rate-records [get]
func (h *RateRecordHandler) List(c *gin.Context) {
	var filter shippingapp.RateRecordListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.recordService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @ID           updateRateRecord
// @Summary      Replace a rate record
// @Tags         rate-records
// @Accept       json
// @Produce      json
// @Param        id path string true "Rate record ID" format(uuid)
// @Param        request body shippingapp.RateRecordRequest true "Rate record"
// @Success      200 {object} APIResponse[shippingapp.RateRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/rate-records/{id} [put]
func (h *RateRecordHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req shippingapp.RateRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.recordService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteRateRecord
// @Summary      Delete a rate record
// @Tags         rate-records
// @Param        id path string true "Rate record ID" format(uuid)
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/rate-records/{id} [delete]
func (h *RateRecordHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
