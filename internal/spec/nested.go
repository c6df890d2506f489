package spec

import (
	"errors"
	"fmt"

	"resource-assembler/internal/common"
)

// NestedKind discriminates the Nested variant.
type NestedKind int

const (
	// NestedAbsent means no nested entry was declared.
	NestedAbsent NestedKind = iota
	// NestedExplicit carries a complete Specification.
	NestedExplicit
	// NestedNamed carries only a type name.
	NestedNamed
	// NestedInline carries an override object that has not been compiled yet.
	// Specifications never hold inline entries: New compiles them to NestedExplicit.
	NestedInline
)

// String returns a human-readable kind name.
func (k NestedKind) String() string {
	switch k {
	case NestedAbsent:
		return "absent"
	case NestedExplicit:
		return "explicit"
	case NestedNamed:
		return "named"
	case NestedInline:
		return "inline"
	default:
		return common.UnknownStr
	}
}

// Nested is the specification declared for one relationship field.
// The zero value is NestedAbsent.
type Nested struct {
	kind     NestedKind
	spec     *Specification
	name     string
	override *Override
}

// Explicit declares a complete Specification for a relationship.
func Explicit(s *Specification) Nested {
	return Nested{kind: NestedExplicit, spec: s}
}

// Named declares the type name of a relationship.
func Named(typ string) Nested {
	return Nested{kind: NestedNamed, name: typ}
}

// Inline declares an override object for a relationship. When o.Type is empty
// the relationship field name becomes the type.
func Inline(o Override) Nested {
	return Nested{kind: NestedInline, override: &o}
}

// Kind returns the variant tag.
func (n Nested) Kind() NestedKind {
	return n.kind
}

// IsAbsent returns true if nothing was declared.
func (n Nested) IsAbsent() bool {
	return n.kind == NestedAbsent
}

// Spec returns the Specification of an explicit entry, or nil.
func (n Nested) Spec() *Specification {
	return n.spec
}

// Name returns the type name of a named entry, or "".
func (n Nested) Name() string {
	return n.name
}

// Override returns the override object of an inline entry, or nil.
func (n Nested) Override() *Override {
	return n.override
}

// compile turns an inline entry into an explicit one and checks the others.
func (n Nested) compile(field string) (Nested, error) {
	switch n.kind {
	case NestedExplicit:
		if n.spec == nil {
			return Nested{}, fmt.Errorf("%w: nested %q: nil specification", ErrInvalidSpec, field)
		}

		return n, nil
	case NestedNamed:
		if n.name == "" {
			return Nested{}, fmt.Errorf("%w: nested %q: empty type name", ErrInvalidSpec, field)
		}

		return n, nil
	case NestedInline:
		typ := n.override.Type
		if typ == "" {
			typ = field
		}

		s, err := New(typ, *n.override)
		if err != nil {
			return Nested{}, fmt.Errorf("nested %q: %w", field, err)
		}

		return Explicit(s), nil
	default:
		return Nested{}, nil
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
// A scalar is a type name; a mapping is an inline override object.
func (n *Nested) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		*n = Named(name)
		return nil
	}

	var o Override
	if err := unmarshal(&o); err == nil {
		*n = Inline(o)
		return nil
	}

	return errors.New("expected type name or override mapping")
}

// MarshalYAML implements yaml.Marshaler.
func (n Nested) MarshalYAML() (any, error) {
	switch n.kind {
	case NestedNamed:
		return n.name, nil
	case NestedInline:
		return n.override, nil
	case NestedExplicit:
		o := n.spec.Override()
		o.Type = n.spec.Type()

		return o, nil
	default:
		return nil, nil
	}
}
