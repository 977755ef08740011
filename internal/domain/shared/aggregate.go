package shared

// BaseAggregateRoot provides common fields for aggregate roots.
// Version backs optimistic locking in the persistence layer.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// GetVersion returns the aggregate version
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion bumps the version and the update timestamp
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.Touch()
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
