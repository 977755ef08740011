package handler

import (
	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/gin-gonic/gin"
)

// ShippingHandler serves the two checkout calls of the rating engine
type ShippingHandler struct {
	BaseHandler
	ratingService *shippingapp.RatingService
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(ratingService *shippingapp.RatingService) *ShippingHandler {
	return &ShippingHandler{ratingService: ratingService}
}

// GetShippingOptions godoc
// @ID           getShippingOptions
// @Summary      Rate a shipment
// @Description  Returns the shipping options for a shipment. Input problems (no items,
// @Description  missing address) are reported in data.errors with an empty option list.
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.GetShippingOptionsRequest true "Shipment to rate"
// @Success      200 {object} APIResponse[shippingapp.ShippingOptionsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/options [post]
func (h *ShippingHandler) GetShippingOptions(c *gin.Context) {
	var req shippingapp.GetShippingOptionsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if !h.resolveStore(c, &req.StoreID) {
		return
	}

	resp, err := h.ratingService.GetShippingOptions(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetFixedRate godoc
// @ID           getFixedRate
// @Summary      Get a vendor's uniform fixed rate
// @Description  Returns the flat rate when every shipping method of the vendor costs the
// @Description  same in fixed-rate mode; configured is false otherwise.
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.GetFixedRateRequest true "Vendor"
// @Success      200 {object} APIResponse[shippingapp.FixedRateResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shipping/fixed-rate [post]
func (h *ShippingHandler) GetFixedRate(c *gin.Context) {
	var req shippingapp.GetFixedRateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.ratingService.GetFixedRate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shippingapp.ToFixedRateResponse(result))
}
