package spec

import (
	"errors"
	"slices"

	"resource-assembler/internal/common"
)

// Fields is an ordered set of field names or included paths.
//
// A nil Fields means "unset" (infer from the record); a non-nil empty Fields
// is an explicit empty selection. Every helper preserves that distinction.
type Fields []string

// NewFields builds an explicit field set from names, dropping empty names and
// duplicates. The result is never nil.
func NewFields(names ...string) Fields {
	result := common.Filter(Fields(names), func(name string) bool { return name != "" })
	if result == nil {
		return Fields{}
	}

	return common.Unique(result)
}

// IsSet returns true if the set was explicitly declared.
func (f Fields) IsSet() bool {
	return f != nil
}

// IsZero reports an unset Fields; yaml.v3 uses it for omitempty so that an
// explicit empty list survives a marshal round-trip.
func (f Fields) IsZero() bool {
	return f == nil
}

// Contains returns true if name is a member of the set.
func (f Fields) Contains(name string) bool {
	return slices.Contains(f, name)
}

// Without returns the members of f that are not in other, keyed by the first
// path segment: ignoring "posts" also removes "posts.comments".
func (f Fields) Without(other Fields) Fields {
	if len(other) == 0 {
		return f
	}

	return common.Filter(f, func(path string) bool {
		head, _ := SplitPath(path)
		return !other.Contains(head)
	})
}

// Heads returns the first segment of every path, deduplicated in order.
func (f Fields) Heads() Fields {
	if f == nil {
		return nil
	}

	heads := make(Fields, 0, len(f))
	for _, path := range f {
		head, _ := SplitPath(path)
		heads = append(heads, head)
	}

	return common.Unique(heads)
}

// Descend returns the remainders of the paths under field:
// Fields{"posts", "posts.comments", "profile"}.Descend("posts") is
// Fields{"comments"}. An unset set descends to an unset set; an explicit set
// always descends to an explicit (possibly empty) one.
func (f Fields) Descend(field string) Fields {
	if f == nil {
		return nil
	}

	result := Fields{}

	for _, path := range f {
		head, rest := SplitPath(path)
		if head == field && rest != "" {
			result = append(result, rest)
		}
	}

	return common.Unique(result)
}

// Clone returns a copy that does not share the backing array.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}

	return slices.Clone(f)
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Accepts a single string or a list of strings.
func (f *Fields) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*f = NewFields(single)
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*f = NewFields(multi...)
		return nil
	}

	return errors.New("expected string or list of strings")
}
