package extract

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"resource-assembler/internal/common"
	"resource-assembler/internal/spec"
)

// Lookup resolves registered Specifications by type name.
type Lookup interface {
	Has(typ string) bool
	Get(typ string) (*spec.Specification, error)
}

// Extractor applies a Specification to one record.
type Extractor struct {
	record Record
	spec   *spec.Specification
	lookup Lookup
	opts   options
}

// New binds a record to a Specification. lookup may be nil, in which case
// relationship types are never looked up and always inferred.
func New(record Record, s *spec.Specification, lookup Lookup, opts ...Option) *Extractor {
	return &Extractor{
		record: record,
		spec:   s,
		lookup: lookup,
		opts:   newOptions(opts),
	}
}

// child binds a related record, sharing lookup and options.
func (e *Extractor) child(record Record, s *spec.Specification) *Extractor {
	return &Extractor{record: record, spec: s, lookup: e.lookup, opts: e.opts}
}

// Specification returns the bound Specification.
func (e *Extractor) Specification() *spec.Specification {
	return e.spec
}

// IsValid returns true if the record has a value at the identifier field.
func (e *Extractor) IsValid() bool {
	return e.ID() != nil
}

// ID returns the identifier, or nil when absent.
func (e *Extractor) ID() any {
	return e.record[e.spec.IDField()]
}

// Type returns the resource type.
func (e *Extractor) Type() string {
	return e.spec.Type()
}

// Attributes returns the declared attributes present in the record, or, when
// attributes are inferred, every string or number field that is neither the
// identifier nor ignored.
func (e *Extractor) Attributes() map[string]any {
	attrs := map[string]any{}

	if declared := e.spec.EffectiveAttributes(); declared.IsSet() {
		for _, field := range declared {
			if e.spec.IsIDField(field) {
				continue
			}

			if v, ok := e.record[field]; ok {
				attrs[field] = v
			}
		}

		return attrs
	}

	for field, v := range e.record {
		if e.spec.IsIDField(field) || e.spec.IsIgnored(field) {
			continue
		}

		if IsScalar(v) {
			attrs[field] = v
		}
	}

	return attrs
}

// RelationshipReferences returns the references of every valid relationship.
// Relationships yielding nothing are absent from the result.
func (e *Extractor) RelationshipReferences() (map[string]Linkage, error) {
	refs := map[string]Linkage{}

	for _, field := range e.relationshipFields() {
		rel, err := e.related(field)
		if err != nil {
			return nil, err
		}

		if rel != nil {
			refs[field] = rel.linkage()
		}
	}

	return refs, nil
}

// Node returns the identity, attributes and relationship references of the record.
func (e *Extractor) Node() (Node, error) {
	refs, err := e.RelationshipReferences()
	if err != nil {
		return Node{}, err
	}

	if len(refs) == 0 {
		refs = nil
	}

	return Node{
		ID:            e.ID(),
		Type:          e.Type(),
		Attributes:    e.Attributes(),
		Relationships: refs,
	}, nil
}

// IncludedTree expands every included relationship recursively and returns
// the related resources keyed by relationship path. Nested included
// resources are promoted under "<field>.<path>" before the field itself.
func (e *Extractor) IncludedTree() (*IncludedTree, error) {
	seen := newVisited()
	if e.IsValid() {
		seen.mark(e.Type(), e.ID())
	}

	return e.includedTree(seen)
}

func (e *Extractor) includedTree(seen visited) (*IncludedTree, error) {
	tree := NewIncludedTree()
	declared := e.spec.EffectiveIncluded()

	for _, field := range e.includedFields() {
		rel, err := e.related(field)
		if err != nil {
			return nil, err
		}

		if rel == nil {
			continue
		}

		nodes := make([]Node, 0, len(rel.children))

		for _, child := range rel.children {
			if declared.IsSet() {
				child = child.child(child.record, child.spec.WithIncluded(declared.Descend(field)))
			}

			if !seen.mark(child.Type(), child.ID()) {
				e.opts.logger.Debug("resource already included",
					"path", field, "type", child.Type(), "id", child.ID())

				// Declared deeper paths are still expanded. They shrink on
				// every descent, so recursion ends.
				if !declared.IsSet() || common.IsEmpty(child.spec.EffectiveIncluded()) {
					continue
				}

				sub, err := child.includedTree(seen)
				if err != nil {
					return nil, err
				}

				tree.Promote(field, sub)

				continue
			}

			node, err := child.Node()
			if err != nil {
				return nil, err
			}

			sub, err := child.includedTree(seen)
			if err != nil {
				return nil, err
			}

			tree.Promote(field, sub)

			nodes = append(nodes, node)
		}

		tree.Add(field, nodes...)
	}

	return tree, nil
}

// ResolveRelationshipSpec returns the Specification for the records of a
// relationship field.
func (e *Extractor) ResolveRelationshipSpec(field string) (*spec.Specification, error) {
	nested := e.spec.Nested(field)

	switch nested.Kind() {
	case spec.NestedExplicit:
		return nested.Spec(), nil
	case spec.NestedNamed:
		if e.lookup != nil && e.lookup.Has(nested.Name()) {
			return e.lookup.Get(nested.Name())
		}

		return e.spec.ResolveNested(field), nil
	case spec.NestedAbsent, spec.NestedInline:
	}

	if e.lookup != nil {
		if e.lookup.Has(field) {
			return e.lookup.Get(field)
		}

		if e.opts.policy.Strict() {
			return nil, fmt.Errorf("%w: relationship %q of %q (policy %s)",
				ErrMissingSpec, field, e.spec.Type(), e.opts.policy)
		}
	}

	return spec.Inferred(field)
}

// relationshipFields returns the candidate relationship fields: the declared
// ones, or every field that is neither ignored nor the identifier, sorted.
func (e *Extractor) relationshipFields() []string {
	if declared := e.spec.EffectiveRelationships(); declared.IsSet() {
		return slices.DeleteFunc(slices.Clone(declared), e.spec.IsIDField)
	}

	fields := slices.Sorted(maps.Keys(e.record))

	return slices.DeleteFunc(fields, func(field string) bool {
		return e.spec.IsIDField(field) || e.spec.IsIgnored(field)
	})
}

// includedFields returns the relationship fields to expand, in declared
// order when included paths are declared.
func (e *Extractor) includedFields() []string {
	candidates := e.relationshipFields()

	declared := e.spec.EffectiveIncluded()
	if !declared.IsSet() {
		return candidates
	}

	return slices.DeleteFunc(slices.Clone(declared.Heads()), func(field string) bool {
		return !slices.Contains(candidates, field)
	})
}

// relation holds the valid related records of one relationship field.
type relation struct {
	many     bool
	children []*Extractor
}

func (r *relation) linkage() Linkage {
	refs := make([]Reference, len(r.children))
	for i, child := range r.children {
		refs[i] = Reference{ID: child.ID(), Type: child.Type()}
	}

	if r.many {
		return ToMany(refs...)
	}

	return ToOne(refs[0])
}

// related binds the records of a relationship field. It returns nil when the
// field is not a relationship or any of its records is invalid.
func (e *Extractor) related(field string) (*relation, error) {
	value := e.record[field]

	if record, ok := AsRecord(value); ok {
		s, err := e.resolve(field, record)
		if err != nil || s == nil {
			return nil, err
		}

		child := e.child(record, s)
		if !child.IsValid() {
			e.opts.logger.Debug("relationship dropped: record has no identifier",
				"type", e.Type(), "field", field, "idField", s.IDField())

			return nil, nil
		}

		return &relation{children: []*Extractor{child}}, nil
	}

	items, ok := AsSequence(value)
	if !ok || len(items) == 0 {
		return nil, nil
	}

	records := make([]Record, len(items))

	for i, item := range items {
		record, ok := AsRecord(item)
		if !ok {
			e.opts.logger.Debug("relationship dropped: element is not a record",
				"type", e.Type(), "field", field, "index", i)

			return nil, nil
		}

		records[i] = record
	}

	s, err := e.resolve(field, records...)
	if err != nil || s == nil {
		return nil, err
	}

	children := make([]*Extractor, len(records))

	for i, record := range records {
		children[i] = e.child(record, s)
		if !children[i].IsValid() {
			e.opts.logger.Debug("relationship dropped: element has no identifier",
				"type", e.Type(), "field", field, "index", i, "idField", s.IDField())

			return nil, nil
		}
	}

	return &relation{many: true, children: children}, nil
}

// resolve returns the Specification of records under field. A strict lookup
// miss is not an error when some record has no default identifier: such
// records are plain embedded data and the field is omitted.
func (e *Extractor) resolve(field string, records ...Record) (*spec.Specification, error) {
	s, err := e.ResolveRelationshipSpec(field)
	if !errors.Is(err, ErrMissingSpec) {
		return s, err
	}

	for _, record := range records {
		if record[spec.DefaultIDField] == nil {
			e.opts.logger.Debug("relationship dropped: unregistered record has no identifier",
				"type", e.Type(), "field", field)

			return nil, nil
		}
	}

	return nil, err
}
