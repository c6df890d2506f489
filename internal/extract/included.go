package extract

import (
	"slices"

	"resource-assembler/internal/common"
	"resource-assembler/internal/spec"
)

// IncludedTree maps relationship paths to the resources side-loaded under
// them. Paths keep first-insertion order; nodes keep insertion order.
type IncludedTree struct {
	paths []string
	nodes map[string][]Node
}

// NewIncludedTree returns an empty tree.
func NewIncludedTree() *IncludedTree {
	return &IncludedTree{nodes: map[string][]Node{}}
}

// Add appends nodes under path. Adding no nodes is a no-op.
func (t *IncludedTree) Add(path string, nodes ...Node) {
	if len(nodes) == 0 {
		return
	}

	if _, ok := t.nodes[path]; !ok {
		t.paths = append(t.paths, path)
	}

	t.nodes[path] = append(t.nodes[path], nodes...)
}

// Promote merges every path of sub into t under prefix ("<prefix>.<path>").
// Siblings promoting the same path are merged in order.
func (t *IncludedTree) Promote(prefix string, sub *IncludedTree) {
	if sub == nil {
		return
	}

	for _, path := range sub.paths {
		t.Add(spec.JoinPath(prefix, path), sub.nodes[path]...)
	}
}

// Paths returns the relationship paths in insertion order.
func (t *IncludedTree) Paths() []string {
	return slices.Clone(t.paths)
}

// Get returns the nodes included under path.
func (t *IncludedTree) Get(path string) []Node {
	return slices.Clone(t.nodes[path])
}

// IsEmpty returns true if nothing is included.
func (t *IncludedTree) IsEmpty() bool {
	return common.IsEmpty(t.paths)
}

// Count returns the total number of included nodes.
func (t *IncludedTree) Count() int {
	n := 0
	for _, nodes := range t.nodes {
		n += len(nodes)
	}

	return n
}

// Flatten returns every included node, path by path.
func (t *IncludedTree) Flatten() []Node {
	result := make([]Node, 0, t.Count())
	for _, path := range t.paths {
		result = append(result, t.nodes[path]...)
	}

	return result
}
