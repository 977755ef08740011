package shipping

import (
	"fmt"
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
)

// CarrierKind identifies which integration, if any, backs a carrier.
// It is parsed once from text and matched with exhaustive switches afterwards.
type CarrierKind int

const (
	CarrierKindGeneric CarrierKind = iota
	CarrierKindSendCloud
	CarrierKindCanadaPost
	CarrierKindAramex
)

// ParseCarrierKind parses a carrier kind name. Empty input means Generic.
func ParseCarrierKind(s string) (CarrierKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "generic":
		return CarrierKindGeneric, nil
	case "sendcloud":
		return CarrierKindSendCloud, nil
	case "canadapost", "canada_post":
		return CarrierKindCanadaPost, nil
	case "aramex":
		return CarrierKindAramex, nil
	}
	return CarrierKindGeneric, shared.NewDomainError(ErrUnknownCarrierKind.Code, fmt.Sprintf("Unknown carrier kind %q", s))
}

// ParseCarrierKinds parses a list of carrier kind names.
func ParseCarrierKinds(names []string) ([]CarrierKind, error) {
	kinds := make([]CarrierKind, 0, len(names))
	for _, n := range names {
		k, err := ParseCarrierKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// String returns the canonical name.
func (k CarrierKind) String() string {
	switch k {
	case CarrierKindGeneric:
		return "Generic"
	case CarrierKindSendCloud:
		return "SendCloud"
	case CarrierKindCanadaPost:
		return "CanadaPost"
	case CarrierKindAramex:
		return "Aramex"
	}
	return fmt.Sprintf("CarrierKind(%d)", int(k))
}

// IsIntegration reports whether the kind is backed by a third-party carrier integration.
func (k CarrierKind) IsIntegration() bool {
	switch k {
	case CarrierKindSendCloud, CarrierKindCanadaPost, CarrierKindAramex:
		return true
	case CarrierKindGeneric:
		return false
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (k CarrierKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CarrierKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCarrierKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Carrier is a shipping carrier configured for rating.
// ComputationMethodSystemName names the rating plugin that owns the carrier.
type Carrier struct {
	shared.BaseAggregateRoot
	Name                        string
	Kind                        CarrierKind
	ComputationMethodSystemName string
	Active                      bool
	DisplayOrder                int
}

// NewCarrier creates an active carrier
func NewCarrier(name, systemName string, kind CarrierKind) (*Carrier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if strings.TrimSpace(systemName) == "" {
		return nil, shared.NewDomainError("INVALID_SYSTEM_NAME", "Computation method system name cannot be empty")
	}
	return &Carrier{
		BaseAggregateRoot:           shared.NewBaseAggregateRoot(),
		Name:                        name,
		Kind:                        kind,
		ComputationMethodSystemName: strings.TrimSpace(systemName),
		Active:                      true,
	}, nil
}

// Deactivate hides the carrier from new shipments
func (c *Carrier) Deactivate() {
	c.Active = false
	c.IncrementVersion()
}

// ShippingMethod is a named delivery service (e.g. "Ground", "Next day").
type ShippingMethod struct {
	shared.BaseAggregateRoot
	Name         string
	Description  string
	DisplayOrder int
}

// NewShippingMethod creates a shipping method
func NewShippingMethod(name, description string, displayOrder int) (*ShippingMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &ShippingMethod{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(description),
		DisplayOrder:      displayOrder,
	}, nil
}

// CutOffTime is a named dispatch cut-off ("Order before 2pm").
type CutOffTime struct {
	shared.BaseEntity
	Name         string
	DisplayOrder int
}

// NewCutOffTime creates a cut-off time
func NewCutOffTime(name string, displayOrder int) (*CutOffTime, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &CutOffTime{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		DisplayOrder: displayOrder,
	}, nil
}
