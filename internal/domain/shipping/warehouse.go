package shipping

import (
	"strings"

	"github.com/erp/shipping/internal/domain/shared"
	"github.com/google/uuid"
)

// Warehouse is a ship-from location referenced by rate records
type Warehouse struct {
	shared.BaseAggregateRoot
	Name            string
	AddressLine     string
	City            string
	StateProvinceID uuid.UUID
	CountryID       uuid.UUID
	Zip             string
}

// NewWarehouse creates a new warehouse with required fields
func NewWarehouse(name string, countryID uuid.UUID) (*Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 200 characters")
	}
	return &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		CountryID:         countryID,
	}, nil
}

// SetAddress updates the street address of the warehouse
func (w *Warehouse) SetAddress(line, city string, stateProvinceID uuid.UUID, zip string) {
	w.AddressLine = strings.TrimSpace(line)
	w.City = strings.TrimSpace(city)
	w.StateProvinceID = stateProvinceID
	w.Zip = strings.TrimSpace(zip)
	w.IncrementVersion()
}
