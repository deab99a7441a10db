package units

import (
	"sort"
	"strings"

	"github.com/objectline/sdk"
)

// Unit represents a canonical unit of measure carried by interchange records.
type Unit string

const (
	// Millimeters is the millimeter length unit.
	Millimeters Unit = "mm"

	// Centimeters is the centimeter length unit.
	Centimeters Unit = "cm"

	// Meters is the meter length unit, the base unit for lengths.
	Meters Unit = "m"

	// Kilometers is the kilometer length unit.
	Kilometers Unit = "km"

	// Inches is the inch length unit.
	Inches Unit = "in"

	// Feet is the foot length unit.
	Feet Unit = "ft"

	// Yards is the yard length unit.
	Yards Unit = "yd"

	// Miles is the mile length unit.
	Miles Unit = "mi"

	// None marks a record that carries no unit of measure.
	None Unit = "none"

	// SquareMeters is the square meter area unit.
	SquareMeters Unit = "m²"

	// CubicMeters is the cubic meter volume unit.
	CubicMeters Unit = "m³"

	// Percent is the percentage ratio unit.
	Percent Unit = "%"

	// Watts is the watt power unit.
	Watts Unit = "W"

	// WattsPerSquareMeter is the irradiance unit W/m².
	WattsPerSquareMeter Unit = "W/m²"

	// LitersPerSecondPerSquareMeter is the flow-rate unit L/(s·m²).
	LitersPerSecondPerSquareMeter Unit = "L/(s·m²)"
)

// unitAliases maps each unit to the strings that resolve to it.
// Aliases are stored as-is and matched case-insensitively; the canonical
// symbol is always its unit's first alias.
var unitAliases = map[Unit][]string{
	Millimeters:                   {"mm", "mil", "millimeters", "millimetres"},
	Centimeters:                   {"cm", "centimetre", "centimeter", "centimetres", "centimeters"},
	Meters:                        {"m", "meter", "meters", "metre", "metres"},
	Kilometers:                    {"km", "kilometer", "kilometre", "kilometers", "kilometres"},
	Inches:                        {"in", "inch", "inches"},
	Feet:                          {"ft", "foot", "feet"},
	Yards:                         {"yd", "yard", "yards"},
	Miles:                         {"mi", "mile", "miles"},
	None:                          {"none", "null"},
	SquareMeters:                  {"m²", "sqm", "square meter", "square meters"},
	CubicMeters:                   {"m³", "cbm", "cubic meter", "cubic meters"},
	Percent:                       {"%", "percent"},
	Watts:                         {"W", "watt", "watts"},
	WattsPerSquareMeter:           {"W/m²", "watts per square meter"},
	LitersPerSecondPerSquareMeter: {"L/(s·m²)", "liters per second per square meter"},
}

// aliasIndex maps lowercased aliases to their canonical unit.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]Unit {
	index := make(map[string]Unit)
	for unit, aliases := range unitAliases {
		for _, alias := range aliases {
			index[strings.ToLower(alias)] = unit
		}
	}
	return index
}

// IsValid returns true if the unit is one of the canonical units.
func (u Unit) IsValid() bool {
	_, ok := unitAliases[u]
	return ok
}

// String returns the canonical symbol of the unit.
func (u Unit) String() string {
	return string(u)
}

// Aliases returns the strings that Parse resolves to this unit, starting
// with the canonical symbol. Returns nil for an invalid unit.
func (u Unit) Aliases() []string {
	aliases, ok := unitAliases[u]
	if !ok {
		return nil
	}

	// Copy to keep the table immutable
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}

// All returns every canonical unit, ordered by integer encoding.
func All() []Unit {
	out := make([]Unit, 0, len(unitAliases))
	for unit := range unitAliases {
		out = append(out, unit)
	}
	sort.Slice(out, func(i, j int) bool {
		return unitEncodings[out[i]] < unitEncodings[out[j]]
	})
	return out
}

// Parse resolves a free-form unit string to its canonical unit.
// Aliases are matched case-insensitively, so "MM", "mm", and "Millimeters"
// all resolve to Millimeters. Returns an error wrapping sdk.ErrInvalidUnit
// if the string matches no alias.
func Parse(s string) (Unit, error) {
	if unit, ok := aliasIndex[strings.ToLower(s)]; ok {
		return unit, nil
	}
	return "", sdk.NewValidationError("units.Parse", sdk.ErrInvalidUnit).
		WithContext(map[string]any{
			"unit":  s,
			"valid": knownSymbols(),
		})
}

// knownSymbols lists every canonical symbol for error diagnostics.
func knownSymbols() []string {
	all := All()
	symbols := make([]string, len(all))
	for i, unit := range all {
		symbols[i] = unit.String()
	}
	return symbols
}
