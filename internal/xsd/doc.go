// Package xsd validates generated documents against the Datawarehouse
// schema. It is the acceptance gate run after generation, not part of the
// build/serialize pipeline itself.
//
// Why an in-tree validator?
//
// Go has no maintained pure-Go XSD processor, and the cgo bindings around
// libxml2 are not an acceptable dependency for a portable library. The
// shipped schema uses a small, fixed XSD subset (top-level elements,
// complexType sequences with occurrence bounds, simpleContent extensions
// with attributes, and string enumerations), so this package implements
// exactly that subset and refuses schemas that step outside it.
//
// Parsing the schema is comparatively expensive, so the embedded default is
// compiled once per process and memoized. The cache has no invalidation:
// the schema file is immutable for the process lifetime.
package xsd
