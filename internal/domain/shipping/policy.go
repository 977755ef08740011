package shipping

// DefaultSystemName is the computation method name this engine answers to.
const DefaultSystemName = "Shipping.ShippingManager"

// PackagingMethod decides how item dimensions collapse into one parcel.
type PackagingMethod string

const (
	// PackagingCubeRoot uses the cube root of the total item volume for each side.
	PackagingCubeRoot PackagingMethod = "cube_root"
	// PackagingStacked stacks items: max length, max width, summed height.
	PackagingStacked PackagingMethod = "stacked"
)

// Policy carries every setting that influences rating. It is passed explicitly
// to the matcher, calculator and assembler; none of them read global state.
type Policy struct {
	// SystemName is compared against Carrier.ComputationMethodSystemName
	SystemName string
	// WeightByTotalEnabled selects banded rating; when false the flat fixed-rate path is used
	WeightByTotalEnabled bool
	// LimitMethodsToCreated suppresses methods that have no matching rate record
	LimitMethodsToCreated bool
	// DisplayCutOffTime appends the cut-off name to option descriptions
	DisplayCutOffTime bool
	// IgnoreRegion skips country and state matching (international operations)
	IgnoreRegion bool
	// TestMode logs every candidate decision
	TestMode bool
	// Integrations lists the carrier integrations that are switched on
	Integrations []CarrierKind
	// WeightUnit and DimensionUnit are the engine's measurement units
	WeightUnit    string
	DimensionUnit string
	Packaging     PackagingMethod
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		SystemName:           DefaultSystemName,
		WeightByTotalEnabled: true,
		WeightUnit:           "KG",
		DimensionUnit:        "CM",
		Packaging:            PackagingCubeRoot,
	}
}

// IntegrationEnabled reports whether carriers of kind k may be surfaced.
func (p Policy) IntegrationEnabled(k CarrierKind) bool {
	switch k {
	case CarrierKindGeneric:
		return true
	case CarrierKindSendCloud, CarrierKindCanadaPost, CarrierKindAramex:
		for _, enabled := range p.Integrations {
			if enabled == k {
				return true
			}
		}
		return false
	}
	return false
}
