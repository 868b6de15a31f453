// Package schema defines the wire shapes of the Proligent Datawarehouse
// document: one Go struct per schema element, with struct field order
// matching the schema's sequence order exactly. The serializer emits these
// structs verbatim, so any reordering here is a schema break.
//
// These types are deliberately dumb. All defaulting, back-filling, and
// empty-field suppression happens in the model package while building; a
// schema value is already in its final wire form.
package schema
