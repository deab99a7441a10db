// Package sdk provides the Go SDK for the Objectline data-interchange system.
//
// Objectline records describe design and simulation objects that move between
// authoring tools. Every record carries a unit of measure, and the serialized
// form embeds a compact integer encoding of that unit rather than the unit
// string itself. This SDK supplies the building blocks that producers and
// consumers of those records share.
//
// # Packages
//
// The SDK is organized into one package per concern:
//
//   - units: canonical units of measure, alias normalization, compact integer
//     encodings, and scale-factor conversion
//
// The root package holds the structured error type shared across the SDK.
//
// # Error Handling
//
// SDK operations return *Error values that wrap sentinel errors, so callers
// can branch with errors.Is:
//
//	u, err := units.Parse(input)
//	if errors.Is(err, sdk.ErrInvalidUnit) {
//		// reject the record
//	}
//
// Each *Error carries the operation that failed and a context map with the
// offending input and, where applicable, the valid alternatives.
package sdk
