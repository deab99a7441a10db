// Package units provides canonical units of measure for Objectline records.
//
// Every record in the interchange system carries a unit of measure. Authoring
// tools spell units in many ways ("m", "meter", "metres"), so the package
// normalizes free-form unit strings to a closed set of canonical Unit values,
// maps each unit to the compact integer encoding embedded in serialized
// records, and computes scale factors for converting quantities between units.
//
// # Canonical Units
//
// The unit set is fixed at compile time: the eight common length units
// (mm through mi), a dimensionless None, square and cubic meters, percent,
// and three power/flux units. There is no runtime registration.
//
// # Parsing and Encoding
//
// Parse resolves any registered alias, case-insensitively:
//
//	u, err := units.Parse("Meters") // units.Meters
//
// Encode and FromEncoding translate between units and the integer form used
// in persisted records. Encoding 0 is reserved for "no unit": both
// units.None and a nil value encode to 0, and FromEncoding(0) returns
// units.None.
//
// # Scale Factors
//
// ScaleFactor returns the multiplier that converts a quantity from one unit
// to another, computed through each unit's scale-to-base factor (meters for
// length units):
//
//	f, err := units.ScaleFactor(units.Meters, units.Millimeters) // 1000
//
// Scale factors are ratios of to-base factors; the package does not check
// that the two units share a dimension.
//
// # Thread Safety
//
// All lookup tables are immutable after package initialization, so every
// function is safe for unrestricted concurrent use without locking.
package units
