package units

import (
	"github.com/objectline/sdk"
)

// unitScales maps each unit to its scale-to-base factor: meters for length
// units, decimal fraction for percent, and 1.0 for units already expressed
// in their base form.
var unitScales = map[Unit]float64{
	None:                          1,
	Millimeters:                   0.001,
	Centimeters:                   0.01,
	Meters:                        1.0,
	Kilometers:                    1000.0,
	Inches:                        0.0254,
	Feet:                          0.3048,
	Yards:                         0.9144,
	Miles:                         1609.340,
	SquareMeters:                  1.0,
	CubicMeters:                   1.0,
	Percent:                       0.01,
	Watts:                         1.0,
	WattsPerSquareMeter:           1.0,
	LitersPerSecondPerSquareMeter: 1.0,
}

// ScaleFactorToBase returns the multiplier that converts one quantity of the
// unit to the unit's base (meters for length units). Returns an error
// wrapping sdk.ErrInvalidUnit if the unit has no scale entry.
func ScaleFactorToBase(u Unit) (float64, error) {
	scale, ok := unitScales[u]
	if !ok {
		return 0, sdk.NewValidationError("units.ScaleFactorToBase", sdk.ErrInvalidUnit).
			WithContext(map[string]any{
				"unit":  string(u),
				"valid": knownSymbols(),
			})
	}
	return scale, nil
}

// ScaleFactor returns the multiplier that converts a quantity from one unit
// to another, computed as the ratio of the two scale-to-base factors. The
// units are not checked for a shared dimension; callers converting between
// incommensurable units get the raw ratio.
func ScaleFactor(from, to Unit) (float64, error) {
	fromScale, err := ScaleFactorToBase(from)
	if err != nil {
		return 0, err
	}
	toScale, err := ScaleFactorToBase(to)
	if err != nil {
		return 0, err
	}
	return fromScale / toScale, nil
}

// ScaleFactorFromStrings parses both unit strings and returns the scale
// factor between them.
func ScaleFactorFromStrings(from, to string) (float64, error) {
	fromUnit, err := Parse(from)
	if err != nil {
		return 0, err
	}
	toUnit, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return ScaleFactor(fromUnit, toUnit)
}

// Convert scales a quantity from one unit to another.
func Convert(v float64, from, to Unit) (float64, error) {
	factor, err := ScaleFactor(from, to)
	if err != nil {
		return 0, err
	}
	return v * factor, nil
}
