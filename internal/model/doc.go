// Package model is the in-memory record of one manufacturing test execution:
// a tree of process, operation, sequence, and step runs with their measures,
// characteristics, and documents, rooted in a DataWareHouse aggregate.
//
// Entities are plain mutable values owned exclusively by their parent. The
// tree can be assembled top-down (create parents, attach children as they
// run) or bottom-up (build children first, attach to parents afterwards);
// both orders produce identical documents. Building walks the tree once,
// applies the defaulting and empty-field suppression rules, and produces
// schema nodes ready for serialization. The tree is simply discarded
// afterwards.
//
// Nothing in this package locks: a tree belongs to one goroutine for the
// duration of construction and build.
package model
