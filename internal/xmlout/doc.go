// Package xmlout turns built warehouse nodes into canonical XML bytes.
//
// Why a render-then-canonicalize pipeline?
//
// The first-pass marshal controls neither indentation nor where namespace
// declarations land, and downstream review plus golden-fixture testing both
// need byte-stable, human-readable output. The canonicalization pass
// re-reads the token stream, promotes the root element's namespace to the
// document's single default declaration, strips every redundant per-element
// declaration, and re-emits with two-space indentation and an XML
// declaration. Canonicalization is mandatory: raw marshal output is never
// written to disk.
package xmlout
