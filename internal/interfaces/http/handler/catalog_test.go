package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeData[T any](t *testing.T, body []byte) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Data
}

func TestCatalogHandler_Carriers(t *testing.T) {
	env := newShippingTestEnv(t, shipping.DefaultPolicy())

	w := env.do(t, http.MethodPost, "/carriers", map[string]any{"name": "DHL", "display_order": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dhl := decodeData[shippingapp.CarrierResponse](t, w.Body.Bytes())
	assert.Equal(t, shipping.CarrierKindGeneric.String(), dhl.Kind)
	assert.Equal(t, shipping.DefaultSystemName, dhl.SystemName)
	assert.True(t, dhl.Active)

	inactive := false
	w = env.do(t, http.MethodPost, "/carriers", map[string]any{"name": "Old Post", "active": inactive, "display_order": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("get", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/carriers/"+dhl.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "DHL", decodeData[shippingapp.CarrierResponse](t, w.Body.Bytes()).Name)
	})

	t.Run("get unknown", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/carriers/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list in display order", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/carriers", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeData[[]shippingapp.CarrierResponse](t, w.Body.Bytes())
		require.Len(t, list, 2)
		assert.Equal(t, "Old Post", list[0].Name)
		assert.Equal(t, "DHL", list[1].Name)
	})

	t.Run("list active only", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/carriers?active=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeData[[]shippingapp.CarrierResponse](t, w.Body.Bytes())
		require.Len(t, list, 1)
		assert.Equal(t, "DHL", list[0].Name)
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/carriers", map[string]any{"name": "X", "kind": "pigeon"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "UNKNOWN_CARRIER_KIND", decodeResponse(t, w).Error.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/carriers", map[string]any{"kind": "generic"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
	})
}

func TestCatalogHandler_MethodsAndCutOffTimes(t *testing.T) {
	env := newShippingTestEnv(t, shipping.DefaultPolicy())
	env.createMethod(t, "Express", 2)
	env.createMethod(t, "Ground", 1)

	w := env.do(t, http.MethodGet, "/methods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	methods := decodeData[[]shippingapp.ShippingMethodResponse](t, w.Body.Bytes())
	require.Len(t, methods, 2)
	assert.Equal(t, "Ground", methods[0].Name)

	w = env.do(t, http.MethodPost, "/cutoff-times", map[string]any{"name": "Order before 2pm"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/cutoff-times", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cutOffs := decodeData[[]shippingapp.CutOffTimeResponse](t, w.Body.Bytes())
	require.Len(t, cutOffs, 1)
	assert.Equal(t, "Order before 2pm", cutOffs[0].Name)

	w = env.do(t, http.MethodPost, "/cutoff-times", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_Warehouses(t *testing.T) {
	env := newShippingTestEnv(t, shipping.DefaultPolicy())

	for _, name := range []string{"North", "South"} {
		w := env.do(t, http.MethodPost, "/warehouses", map[string]any{"name": name, "city": "Berlin", "zip": "10115"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodGet, "/warehouses?search=nor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeData[[]shippingapp.WarehouseResponse](t, w.Body.Bytes())
	require.Len(t, list, 1)
	assert.Equal(t, "North", list[0].Name)
	assert.Equal(t, "10115", list[0].Zip)
}

func TestCatalogHandler_FixedRates(t *testing.T) {
	env := newShippingTestEnv(t, shipping.DefaultPolicy())
	method := env.createMethod(t, "Ground", 1)
	vendor := uuid.New()

	w := env.do(t, http.MethodPut, "/fixed-rates", map[string]any{
		"vendor_id": vendor, "shipping_method_id": method, "rate": "4.99", "transit_days": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/fixed-rates?vendor_id="+vendor.String()+"&method_id="+method.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[shippingapp.FixedRateSettingResponse](t, w.Body.Bytes())
	assert.True(t, decimal.RequireFromString("4.99").Equal(got.Rate))
	require.NotNil(t, got.TransitDays)
	assert.Equal(t, 3, *got.TransitDays)

	t.Run("store-wide setting is separate", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/fixed-rates?method_id="+method.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[shippingapp.FixedRateSettingResponse](t, w.Body.Bytes())
		assert.True(t, got.Rate.IsZero())
		assert.Nil(t, got.TransitDays)
	})

	t.Run("method is required", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/fixed-rates?vendor_id="+vendor.String(), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative rate", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/fixed-rates", map[string]any{
			"shipping_method_id": method, "rate": "-1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_RATE", decodeResponse(t, w).Error.Code)
	})

	t.Run("unknown method", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/fixed-rates", map[string]any{
			"shipping_method_id": uuid.New(), "rate": "1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_SHIPPING_METHOD", decodeResponse(t, w).Error.Code)
	})
}
