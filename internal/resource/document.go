package resource

import (
	"encoding/json"
	"slices"

	"resource-assembler/internal/common"
	"resource-assembler/internal/extract"
)

// Reference is the {id, type} pointer to a resource.
type Reference = extract.Reference

// Relationship wraps the linkage of one relationship.
type Relationship struct {
	Data extract.Linkage `json:"data"`
}

// Resource is one typed object of a document.
type Resource struct {
	ID            any                     `json:"id"`
	Type          string                  `json:"type"`
	Attributes    map[string]any          `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Reference returns the {id, type} pointer to r.
func (r Resource) Reference() Reference {
	return Reference{ID: r.ID, Type: r.Type}
}

// Primary is the data member of a document: a single resource or an
// ordered collection.
type Primary struct {
	resources []Resource
	many      bool
}

// Single returns primary data holding one resource.
func Single(r Resource) Primary {
	return Primary{resources: []Resource{r}}
}

// Collection returns primary data holding resources in order.
func Collection(rs ...Resource) Primary {
	return Primary{resources: slices.Clone(rs), many: true}
}

// IsCollection returns true if the primary data is a collection.
func (p Primary) IsCollection() bool {
	return p.many
}

// Resource returns the resource of single primary data.
func (p Primary) Resource() (Resource, bool) {
	if p.many {
		return Resource{}, false
	}

	return common.First(p.resources)
}

// Resources returns every primary resource in order.
func (p Primary) Resources() []Resource {
	return slices.Clone(p.resources)
}

// MarshalJSON encodes single data as an object and a collection as an array.
func (p Primary) MarshalJSON() ([]byte, error) {
	if p.many {
		rs := p.resources
		if rs == nil {
			rs = []Resource{}
		}

		return json.Marshal(rs)
	}

	if r, ok := p.Resource(); ok {
		return json.Marshal(r)
	}

	return []byte("null"), nil
}

// Document is the assembled output. Included is nil when nothing is side-loaded.
type Document struct {
	Data     Primary    `json:"data"`
	Included []Resource `json:"included,omitempty"`
}

func formatNode(n extract.Node) Resource {
	r := Resource{
		ID:         n.ID,
		Type:       n.Type,
		Attributes: n.Attributes,
	}

	if len(n.Relationships) > 0 {
		r.Relationships = make(map[string]Relationship, len(n.Relationships))
		for name, linkage := range n.Relationships {
			r.Relationships[name] = Relationship{Data: linkage}
		}
	}

	return r
}

func formatIncluded(tree *extract.IncludedTree) []Resource {
	nodes := tree.Flatten()
	if len(nodes) == 0 {
		return nil
	}

	result := make([]Resource, len(nodes))
	for i, n := range nodes {
		result[i] = formatNode(n)
	}

	return result
}
