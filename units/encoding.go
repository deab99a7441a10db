package units

import (
	"strings"

	"github.com/objectline/sdk"
)

// unitEncodings maps each unit to the compact integer embedded in serialized
// records. Encodings are stable across releases: 0 is reserved for "no unit"
// and existing values are never reassigned.
var unitEncodings = map[Unit]int{
	None:                          0,
	Millimeters:                   1,
	Centimeters:                   2,
	Meters:                        3,
	Kilometers:                    4,
	Inches:                        5,
	Feet:                          6,
	Yards:                         7,
	Miles:                         8,
	SquareMeters:                  9,
	CubicMeters:                   10,
	Percent:                       11,
	Watts:                         12,
	WattsPerSquareMeter:           13,
	LitersPerSecondPerSquareMeter: 14,
}

// encodingIndex maps integer encodings back to their unit.
var encodingIndex = buildEncodingIndex()

func buildEncodingIndex() map[int]Unit {
	index := make(map[int]Unit, len(unitEncodings))
	for unit, code := range unitEncodings {
		index[code] = unit
	}
	return index
}

// Encoding returns the compact integer encoding of the unit.
// Returns an error wrapping sdk.ErrMissingEncoding if the unit has no entry
// in the encoding table.
func (u Unit) Encoding() (int, error) {
	code, ok := unitEncodings[u]
	if !ok {
		return 0, sdk.NewEncodingError("units.Unit.Encoding", sdk.ErrMissingEncoding).
			WithContext(map[string]any{
				"unit":  string(u),
				"valid": knownSymbols(),
			})
	}
	return code, nil
}

// FromEncoding resolves an integer encoding to its canonical unit.
// Encoding 0 resolves to None. Returns an error wrapping
// sdk.ErrUnknownEncoding for codes with no matching unit.
func FromEncoding(code int) (Unit, error) {
	unit, ok := encodingIndex[code]
	if !ok {
		return "", sdk.NewNotFoundError("units.FromEncoding", sdk.ErrUnknownEncoding).
			WithContext(map[string]any{
				"encoding": code,
				"valid":    validEncodings(),
			})
	}
	return unit, nil
}

// Encode returns the compact integer encoding for a Unit, a unit string, or
// nil. Strings are first resolved through the alias table; a string that
// matches no alias is looked up as-is, so only strings that are neither an
// alias nor a canonical symbol fail. A nil value encodes to 0, the "no unit"
// encoding. Returns an error wrapping sdk.ErrMissingEncoding when no
// encoding exists for the resolved value.
func Encode(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case Unit:
		return x.Encoding()
	case string:
		unit, ok := aliasIndex[strings.ToLower(x)]
		if !ok {
			// Fall back to the raw value; Encoding reports the failure
			unit = Unit(x)
		}
		return unit.Encoding()
	default:
		return 0, sdk.NewEncodingError("units.Encode", sdk.ErrMissingEncoding).
			WithContext(map[string]any{
				"unit":  x,
				"valid": knownSymbols(),
			})
	}
}

// validEncodings lists every encoding and its unit for error diagnostics.
func validEncodings() map[int]string {
	out := make(map[int]string, len(encodingIndex))
	for code, unit := range encodingIndex {
		out[code] = unit.String()
	}
	return out
}
