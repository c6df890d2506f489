// Package resource assembles extracted records into documents.
//
// A Builder collects overrides on top of a base Specification, compiles
// them once and drives the extractor over a record or a sequence of
// records. The result is a Document: primary data (one resource or a
// collection) plus the flattened included resources, with relationship
// references wrapped as {"data": ...}.
//
// A Registry stores Specifications by type name. It is populated during
// setup, read without locking afterwards, and passed explicitly to the
// builders that need it.
package resource
