package spec

import "maps"

// Override is the raw, partially specified form of a Specification.
// Unset (nil) lists and empty strings mean "keep the default".
type Override struct {
	// Type is only used for inline nested entries; it defaults to the field name.
	Type string `yaml:"type,omitempty"`

	// ID is the field holding the identifier. Defaults to "id".
	ID string `yaml:"id,omitempty"`

	Attributes    Fields `yaml:"attributes,omitempty"`
	Relationships Fields `yaml:"relationships,omitempty"`
	Included      Fields `yaml:"included,omitempty"`
	Ignored       Fields `yaml:"ignored,omitempty"`

	// Nested maps relationship field names to nested specifications.
	Nested map[string]Nested `yaml:"nested,omitempty"`
}

// Merge returns o with every value set in top applied on top of it.
// Nested entries are merged per field; entries from top win.
func (o Override) Merge(top Override) Override {
	result := o

	if top.Type != "" {
		result.Type = top.Type
	}

	if top.ID != "" {
		result.ID = top.ID
	}

	if top.Attributes.IsSet() {
		result.Attributes = top.Attributes.Clone()
	}

	if top.Relationships.IsSet() {
		result.Relationships = top.Relationships.Clone()
	}

	if top.Included.IsSet() {
		result.Included = top.Included.Clone()
	}

	if top.Ignored.IsSet() {
		result.Ignored = top.Ignored.Clone()
	}

	if len(top.Nested) > 0 {
		nested := make(map[string]Nested, len(o.Nested)+len(top.Nested))
		maps.Copy(nested, o.Nested)
		maps.Copy(nested, top.Nested)
		result.Nested = nested
	}

	return result
}
