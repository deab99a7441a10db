package units

import "testing"

func TestDimension_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		dimension Dimension
		want      bool
	}{
		{"none is valid", DimensionNone, true},
		{"length is valid", DimensionLength, true},
		{"area is valid", DimensionArea, true},
		{"volume is valid", DimensionVolume, true},
		{"ratio is valid", DimensionRatio, true},
		{"power is valid", DimensionPower, true},
		{"irradiance is valid", DimensionIrradiance, true},
		{"flow rate is valid", DimensionFlowRate, true},
		{"empty is invalid", Dimension(""), false},
		{"unknown is invalid", Dimension("mass"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dimension.IsValid(); got != tt.want {
				t.Errorf("Dimension.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnit_Dimension(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want Dimension
	}{
		{"millimeters are length", Millimeters, DimensionLength},
		{"meters are length", Meters, DimensionLength},
		{"miles are length", Miles, DimensionLength},
		{"none is dimensionless", None, DimensionNone},
		{"square meters are area", SquareMeters, DimensionArea},
		{"cubic meters are volume", CubicMeters, DimensionVolume},
		{"percent is a ratio", Percent, DimensionRatio},
		{"watts are power", Watts, DimensionPower},
		{"watts per square meter are irradiance", WattsPerSquareMeter, DimensionIrradiance},
		{"flow rate unit", LitersPerSecondPerSquareMeter, DimensionFlowRate},
		{"invalid unit falls back to none", Unit("furlongs"), DimensionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Dimension(); got != tt.want {
				t.Errorf("Unit.Dimension() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestUnit_Dimension_Covered verifies every canonical unit has a dimension
// entry, so Dimension never falls back for valid units other than None.
func TestUnit_Dimension_Covered(t *testing.T) {
	for _, unit := range All() {
		dim := unit.Dimension()
		if !dim.IsValid() {
			t.Errorf("%s: Dimension() = %q is not valid", unit, dim)
		}
		if unit != None && dim == DimensionNone {
			t.Errorf("%s: Dimension() fell back to none", unit)
		}
	}
}
