package resource

import (
	"fmt"
	"maps"

	"resource-assembler/internal/extract"
	"resource-assembler/internal/spec"
)

// Builder accumulates overrides for one resource type. Every With method
// returns a new Builder; the receiver is never modified.
type Builder struct {
	typ      string
	base     *spec.Specification
	overlay  spec.Override
	registry *Registry
}

// New returns a Builder for typ that infers everything not overridden and
// has no registry.
func New(typ string) Builder {
	return Builder{typ: typ}
}

// Type returns the resource type the builder produces.
func (b Builder) Type() string {
	return b.typ
}

// WithID sets the identifier field.
func (b Builder) WithID(field string) Builder {
	b.overlay.ID = field
	return b
}

// WithAttributes replaces the attribute allow-list.
func (b Builder) WithAttributes(fields ...string) Builder {
	b.overlay.Attributes = spec.NewFields(fields...)
	return b
}

// WithRelationships replaces the relationship allow-list.
func (b Builder) WithRelationships(fields ...string) Builder {
	b.overlay.Relationships = spec.NewFields(fields...)
	return b
}

// WithIncluded replaces the included paths. Calling it with no paths
// disables side-loading.
func (b Builder) WithIncluded(paths ...string) Builder {
	b.overlay.Included = spec.NewFields(paths...)
	return b
}

// WithIgnored replaces the ignored fields.
func (b Builder) WithIgnored(fields ...string) Builder {
	b.overlay.Ignored = spec.NewFields(fields...)
	return b
}

// WithNestedSpec sets the nested entry of a relationship field.
func (b Builder) WithNestedSpec(field string, n spec.Nested) Builder {
	nested := make(map[string]spec.Nested, len(b.overlay.Nested)+1)
	maps.Copy(nested, b.overlay.Nested)
	nested[field] = n
	b.overlay.Nested = nested

	return b
}

// WithRegistry sets the registry relationship types are resolved through.
func (b Builder) WithRegistry(r *Registry) Builder {
	b.registry = r
	return b
}

// If returns apply(b) when cond is true and b otherwise.
func (b Builder) If(cond bool, apply func(Builder) Builder) Builder {
	if !cond || apply == nil {
		return b
	}

	return apply(b)
}

// Specification compiles the base Specification and the overrides.
func (b Builder) Specification() (*spec.Specification, error) {
	var base spec.Override
	if b.base != nil {
		base = b.base.Override()
	}

	return spec.New(b.typ, base.Merge(b.overlay))
}

func (b Builder) lookup() extract.Lookup {
	if b.registry == nil {
		return nil
	}

	return b.registry
}

// Serialize assembles a document from a record or a sequence of records.
func (b Builder) Serialize(input any, opts ...extract.Option) (*Document, error) {
	s, err := b.Specification()
	if err != nil {
		return nil, err
	}

	if items, ok := extract.AsSequence(input); ok {
		return b.serializeCollection(s, items, opts)
	}

	if record, ok := extract.AsRecord(input); ok {
		data, included, err := b.serializeRecord(s, record, opts)
		if err != nil {
			return nil, err
		}

		return &Document{Data: Single(data), Included: included}, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
}

// serializeCollection serializes every element independently. Included
// resources are concatenated without deduplication across elements.
func (b Builder) serializeCollection(s *spec.Specification, items []any, opts []extract.Option) (*Document, error) {
	var (
		data     = make([]Resource, 0, len(items))
		included []Resource
	)

	for i, item := range items {
		record, ok := extract.AsRecord(item)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrUnsupportedInput, i, item)
		}

		res, inc, err := b.serializeRecord(s, record, opts)
		if err != nil {
			return nil, err
		}

		data = append(data, res)
		included = append(included, inc...)
	}

	return &Document{Data: Collection(data...), Included: included}, nil
}

func (b Builder) serializeRecord(
	s *spec.Specification,
	record extract.Record,
	opts []extract.Option,
) (Resource, []Resource, error) {
	e := extract.New(record, s, b.lookup(), opts...)

	node, err := e.Node()
	if err != nil {
		return Resource{}, nil, err
	}

	tree, err := e.IncludedTree()
	if err != nil {
		return Resource{}, nil, err
	}

	return formatNode(node), formatIncluded(tree), nil
}
