// Package extract applies a Specification to one concrete record.
//
// An Extractor is bound to a (record, specification, lookup) triple and
// answers:
//
//   - IsValid, ID, Type: identity of the record
//   - Attributes: the scalar fields selected by the specification
//   - RelationshipReferences: {id, type} references to related records
//   - IncludedTree: the fully expanded related resources, keyed by
//     relationship path, with nested included resources promoted to
//     dot-joined paths ("friends.profile")
//
// # Partial failure
//
// Data anomalies are never errors. A related object without an identifier is
// dropped; a related sequence with a single invalid element drops the whole
// relationship, both from references and from the included tree.
//
// # Relationship specifications
//
// ResolveRelationshipSpec picks the Specification of a relationship in this
// order:
//  1. an explicit nested Specification declared for the field
//  2. a named nested type, taken from the Lookup when registered, otherwise
//     used as a bare type label with inferred fields
//  3. the field name looked up as a type in the Lookup; a miss fails with
//     ErrMissingSpec unless the StorePolicy is StoreFallback
//  4. an inferred Specification typed by the field name
//
// # Cycles
//
// IncludedTree threads a visited set of (type, id) pairs through the
// recursion. A resource already expanded in the current tree (the root
// included) is not expanded again, which both deduplicates the included set
// and terminates cyclic record graphs.
package extract
