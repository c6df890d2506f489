package extract

import (
	"encoding/json"
	"slices"

	"resource-assembler/internal/common"
)

// Reference is the minimal {id, type} pointer to a related resource.
type Reference struct {
	ID   any    `json:"id"`
	Type string `json:"type"`
}

// Linkage is the value of one relationship: a single Reference (to-one) or an
// ordered sequence of References (to-many).
type Linkage struct {
	refs []Reference
	many bool
}

// ToOne returns a to-one linkage.
func ToOne(ref Reference) Linkage {
	return Linkage{refs: []Reference{ref}}
}

// ToMany returns a to-many linkage preserving the order of refs.
func ToMany(refs ...Reference) Linkage {
	return Linkage{refs: slices.Clone(refs), many: true}
}

// IsMany returns true for a to-many linkage.
func (l Linkage) IsMany() bool {
	return l.many
}

// One returns the reference of a to-one linkage.
func (l Linkage) One() (Reference, bool) {
	if l.many {
		return Reference{}, false
	}

	return common.First(l.refs)
}

// References returns every reference of the linkage in order.
func (l Linkage) References() []Reference {
	return slices.Clone(l.refs)
}

// MarshalJSON encodes a to-one linkage as an object and a to-many linkage as an array.
func (l Linkage) MarshalJSON() ([]byte, error) {
	if l.many {
		refs := l.refs
		if refs == nil {
			refs = []Reference{}
		}

		return json.Marshal(refs)
	}

	if ref, ok := l.One(); ok {
		return json.Marshal(ref)
	}

	return []byte("null"), nil
}

// Node is the raw extraction of one record: identity, attributes and
// relationship references not yet wrapped for the output document.
type Node struct {
	ID            any
	Type          string
	Attributes    map[string]any
	Relationships map[string]Linkage
}

// Reference returns the {id, type} pointer to this node.
func (n Node) Reference() Reference {
	return Reference{ID: n.ID, Type: n.Type}
}
