package spec

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultIDField is the identifier field used when none is declared.
const DefaultIDField = "id"

// Specification declares how a resource type is sliced out of a record.
// It is immutable after construction; use Override and New to derive a new one.
type Specification struct {
	typ           string
	idField       string
	attributes    Fields
	relationships Fields
	included      Fields
	ignored       Fields
	nested        map[string]Nested
}

// New constructs a Specification of the given type from an override object.
// The Type of the override is ignored: typ always wins.
// Inline nested entries are compiled recursively.
func New(typ string, o Override) (*Specification, error) {
	if typ == "" {
		return nil, fmt.Errorf("%w: type must be a non-empty string", ErrInvalidSpec)
	}

	s := &Specification{
		typ:           typ,
		idField:       o.ID,
		attributes:    o.Attributes.Clone(),
		relationships: o.Relationships.Clone(),
		included:      o.Included.Clone(),
		ignored:       NewFields(o.Ignored...),
	}

	if s.idField == "" {
		s.idField = DefaultIDField
	}

	if len(o.Nested) > 0 {
		s.nested = make(map[string]Nested, len(o.Nested))

		for _, field := range slices.Sorted(maps.Keys(o.Nested)) {
			n, err := o.Nested[field].compile(field)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", typ, err)
			}

			if !n.IsAbsent() {
				s.nested[field] = n
			}
		}
	}

	return s, nil
}

// newInferred returns a Specification that infers everything from the record.
// typ must already be known to be non-empty.
func newInferred(typ string) *Specification {
	return &Specification{typ: typ, idField: DefaultIDField, ignored: Fields{}}
}

// Inferred returns a Specification of type typ that declares nothing and
// therefore infers attributes, relationships and included resources.
func Inferred(typ string) (*Specification, error) {
	if typ == "" {
		return nil, fmt.Errorf("%w: type must be a non-empty string", ErrInvalidSpec)
	}

	return newInferred(typ), nil
}

// Type returns the resource type name.
func (s *Specification) Type() string {
	return s.typ
}

// IDField returns the field holding the identifier.
func (s *Specification) IDField() string {
	return s.idField
}

// Ignored returns the ignored field names.
func (s *Specification) Ignored() Fields {
	return s.ignored.Clone()
}

// EffectiveAttributes returns the declared attributes minus ignored fields,
// or nil when attributes are inferred.
func (s *Specification) EffectiveAttributes() Fields {
	return s.attributes.Without(s.ignored)
}

// EffectiveRelationships returns the declared relationships minus ignored
// fields, or nil when relationships are inferred.
func (s *Specification) EffectiveRelationships() Fields {
	return s.relationships.Without(s.ignored)
}

// EffectiveIncluded returns the declared included paths minus those rooted at
// an ignored field, or nil when every discovered relationship is included.
func (s *Specification) EffectiveIncluded() Fields {
	return s.included.Without(s.ignored)
}

// IsIgnored returns true if field is ignored.
func (s *Specification) IsIgnored(field string) bool {
	return s.ignored.Contains(field)
}

// IsIDField returns true if field holds the identifier.
func (s *Specification) IsIDField(field string) bool {
	return field == s.idField
}

// Nested returns the nested entry declared for a relationship field.
func (s *Specification) Nested(field string) Nested {
	return s.nested[field]
}

// NestedFields returns the fields with a nested entry, sorted.
func (s *Specification) NestedFields() []string {
	return slices.Sorted(maps.Keys(s.nested))
}

// ResolveNested returns the Specification declared for a relationship field:
// the explicit one, a fresh inferred one typed by a named entry, or nil when
// nothing is declared and the caller must fall back to its own lookup.
func (s *Specification) ResolveNested(field string) *Specification {
	n := s.nested[field]

	switch n.Kind() {
	case NestedExplicit:
		return n.Spec()
	case NestedNamed:
		return newInferred(n.Name())
	default:
		return nil
	}
}

// WithIncluded returns a copy of s with the included paths replaced.
func (s *Specification) WithIncluded(included Fields) *Specification {
	c := *s
	c.included = included.Clone()

	return &c
}

// Override returns the override object s was built from, with Type set.
// New(s.Type(), s.Override()) yields an equivalent Specification.
func (s *Specification) Override() Override {
	o := Override{
		Type:          s.typ,
		Attributes:    s.attributes.Clone(),
		Relationships: s.relationships.Clone(),
		Included:      s.included.Clone(),
		Ignored:       s.ignored.Clone(),
	}

	if s.idField != DefaultIDField {
		o.ID = s.idField
	}

	if len(o.Ignored) == 0 {
		o.Ignored = nil
	}

	if len(s.nested) > 0 {
		o.Nested = maps.Clone(s.nested)
	}

	return o
}
