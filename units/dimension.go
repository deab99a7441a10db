package units

// Dimension classifies what kind of quantity a unit measures.
type Dimension string

const (
	// DimensionNone marks the dimensionless None unit.
	DimensionNone Dimension = "none"

	// DimensionLength covers the length units mm through mi.
	DimensionLength Dimension = "length"

	// DimensionArea covers square meters.
	DimensionArea Dimension = "area"

	// DimensionVolume covers cubic meters.
	DimensionVolume Dimension = "volume"

	// DimensionRatio covers percent.
	DimensionRatio Dimension = "ratio"

	// DimensionPower covers watts.
	DimensionPower Dimension = "power"

	// DimensionIrradiance covers watts per square meter.
	DimensionIrradiance Dimension = "irradiance"

	// DimensionFlowRate covers liters per second per square meter.
	DimensionFlowRate Dimension = "flow_rate"
)

// unitDimensions maps each unit to its dimension.
var unitDimensions = map[Unit]Dimension{
	None:                          DimensionNone,
	Millimeters:                   DimensionLength,
	Centimeters:                   DimensionLength,
	Meters:                        DimensionLength,
	Kilometers:                    DimensionLength,
	Inches:                        DimensionLength,
	Feet:                          DimensionLength,
	Yards:                         DimensionLength,
	Miles:                         DimensionLength,
	SquareMeters:                  DimensionArea,
	CubicMeters:                   DimensionVolume,
	Percent:                       DimensionRatio,
	Watts:                         DimensionPower,
	WattsPerSquareMeter:           DimensionIrradiance,
	LitersPerSecondPerSquareMeter: DimensionFlowRate,
}

// IsValid returns true if the dimension is one of the defined dimensions.
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionNone,
		DimensionLength,
		DimensionArea,
		DimensionVolume,
		DimensionRatio,
		DimensionPower,
		DimensionIrradiance,
		DimensionFlowRate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the dimension.
func (d Dimension) String() string {
	return string(d)
}

// Dimension returns the dimension the unit measures.
// Returns DimensionNone for invalid units.
func (u Unit) Dimension() Dimension {
	if dim, ok := unitDimensions[u]; ok {
		return dim
	}
	return DimensionNone
}
