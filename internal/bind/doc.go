// Package bind moves argument values into typed Go destinations.
//
// Argument bags arrive from several places: Go callers hand over native values
// and the loaders produce generic maps and slices. HCL values are brought into
// that generic form by ToNative, which keeps whole numbers exact. Whatever the
// origin, a value is bound to a parameter field by converting it to cty,
// converting that to the type implied by the Go field, and decoding the result
// with gocty. Direct assignment is used when the Go types already match.
package bind
