// Package scenario loads declarative run descriptions from .hcl files and
// translates them into warehouse model trees.
//
// A scenario file mirrors the execution hierarchy: one warehouse block
// holding an optional product_unit and an optional process, with operation,
// sequence, step, and measure blocks nested in attach order. Attributes map
// one-to-one onto model fields; timestamps accept either RFC 3339 or a naive
// wall-clock form that is homed into the configured zone at build time.
//
// Measure values arrive as cty values, so their kind tag falls out of the
// HCL type system: bools and strings map directly, numbers become INTEGER
// when they are exact integers and REAL otherwise, and a kind attribute
// forces REAL for whole numbers or DATETIME for RFC 3339 strings.
package scenario
