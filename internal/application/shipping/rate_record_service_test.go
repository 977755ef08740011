package shipping

import (
	"context"
	"testing"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRateRecordService(t *testing.T) (*RateRecordService, *MockRateRecordRepository, *MockCarrierRepository, *MockShippingMethodRepository) {
	t.Helper()
	records := new(MockRateRecordRepository)
	carriers := new(MockCarrierRepository)
	methods := new(MockShippingMethodRepository)
	return NewRateRecordService(records, carriers, methods, nil), records, carriers, methods
}

func validRecordRequest() RateRecordRequest {
	return RateRecordRequest{
		Zip:                 " 902 10, 100* ",
		WeightFrom:          decimal.NewFromInt(0),
		WeightTo:            decimal.NewFromInt(30),
		OrderSubtotalTo:     decimal.NewFromInt(500),
		AdditionalFixedCost: decimal.NewFromInt(5),
		FriendlyName:        "  Domestic ",
	}
}

func TestRateRecordService_Create(t *testing.T) {
	t.Run("creates wildcard record", func(t *testing.T) {
		svc, records, _, _ := newRateRecordService(t)
		records.On("Save", mock.Anything, mock.AnythingOfType("*shipping.RateRecord")).Return(nil)

		resp, err := svc.Create(context.Background(), validRecordRequest())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "90210,100*", resp.Zip)
		assert.Equal(t, "Domestic", resp.FriendlyName)
		assert.Equal(t, 1, resp.Version)
		records.AssertExpectations(t)
	})

	t.Run("omitted active flag means active", func(t *testing.T) {
		svc, records, _, _ := newRateRecordService(t)
		records.On("Save", mock.Anything, mock.AnythingOfType("*shipping.RateRecord")).Return(nil)

		req := validRecordRequest()
		require.Nil(t, req.Active)
		resp, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Active)

		inactive := false
		req.Active = &inactive
		resp, err = svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, resp.Active)
	})

	t.Run("rejects inverted weight band", func(t *testing.T) {
		svc, records, _, _ := newRateRecordService(t)
		req := validRecordRequest()
		req.WeightFrom = decimal.NewFromInt(40)

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, shipping.ErrInvalidWeightBand)
		records.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown carrier", func(t *testing.T) {
		svc, _, carriers, _ := newRateRecordService(t)
		req := validRecordRequest()
		req.CarrierID = uuid.New()
		carriers.On("GetCarrier", mock.Anything, req.CarrierID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), req)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_CARRIER", de.Code)
	})

	t.Run("rejects unknown shipping method", func(t *testing.T) {
		svc, _, _, methods := newRateRecordService(t)
		req := validRecordRequest()
		req.ShippingMethodID = uuid.New()
		methods.On("GetShippingMethod", mock.Anything, req.ShippingMethodID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), req)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_SHIPPING_METHOD", de.Code)
	})
}

func TestRateRecordService_Update(t *testing.T) {
	svc, records, _, _ := newRateRecordService(t)
	existing, err := shipping.NewRateRecord(shipping.RateRecordInput{
		Active:          true,
		WeightTo:        decimal.NewFromInt(10),
		OrderSubtotalTo: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	records.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	records.On("Save", mock.Anything, existing).Return(nil)

	inactive := false
	req := validRecordRequest()
	req.Active = &inactive
	resp, err := svc.Update(context.Background(), existing.ID, req)
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, 2, resp.Version)
	assert.Equal(t, "30", resp.WeightTo.String())

	t.Run("missing record", func(t *testing.T) {
		id := uuid.New()
		records.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(context.Background(), id, validRecordRequest())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRateRecordService_DeleteAndGet(t *testing.T) {
	svc, records, _, _ := newRateRecordService(t)
	id := uuid.New()
	records.On("Delete", mock.Anything, id).Return(nil)
	records.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), id))
	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRateRecordService_List(t *testing.T) {
	svc, records, _, _ := newRateRecordService(t)
	vendor := uuid.New()
	active := true

	rec, err := shipping.NewRateRecord(shipping.RateRecordInput{
		Active:   true,
		VendorID: vendor,
		WeightTo: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	matchFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 10 &&
			f.OrderBy == "weight_from" && f.OrderDir == "desc" &&
			f.Filters["vendor_id"] == vendor && f.Filters["active"] == true
	})
	records.On("FindAll", mock.Anything, matchFilter).Return([]shipping.RateRecord{*rec}, nil)
	records.On("Count", mock.Anything, matchFilter).Return(int64(11), nil)

	page, err := svc.List(context.Background(), RateRecordListFilter{
		Page:     2,
		PageSize: 10,
		SortBy:   "weight_from",
		SortDesc: true,
		VendorID: vendor.String(),
		Active:   &active,
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.TotalPages)

	t.Run("invalid id filter", func(t *testing.T) {
		_, err := svc.List(context.Background(), RateRecordListFilter{StoreID: "not-a-uuid"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}
