package shipping

import "github.com/erp/shipping/internal/domain/shared"

// Shipping domain errors
var (
	ErrInvalidWeightBand   = shared.NewDomainError("INVALID_WEIGHT_BAND", "Weight from cannot exceed weight to")
	ErrInvalidSubtotalBand = shared.NewDomainError("INVALID_SUBTOTAL_BAND", "Order subtotal from cannot exceed order subtotal to")
	ErrInvalidRate         = shared.NewDomainError("INVALID_RATE", "Rate fields cannot be negative")
	ErrInvalidUnit         = shared.NewDomainError("INVALID_UNIT", "Unknown measure unit")
	ErrUnknownCarrierKind  = shared.NewDomainError("UNKNOWN_CARRIER_KIND", "Unknown carrier kind")
	ErrInvalidName         = shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
)

// Messages surfaced to the caller as response errors rather than Go errors
const (
	MsgNoShipmentItems    = "No shipment items"
	MsgShippingAddressNil = "Shipping address is not set"
)
