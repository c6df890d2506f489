package extract

import "fmt"

// visited records the (type, id) pairs already expanded in one included tree.
// Identifiers are compared by their formatted value, so 7 and "7" collide.
type visited map[string]struct{}

func newVisited() visited {
	return visited{}
}

// mark records (typ, id) and returns false if it was already recorded.
func (v visited) mark(typ string, id any) bool {
	key := fmt.Sprintf("%s\x00%v", typ, id)
	if _, ok := v[key]; ok {
		return false
	}

	v[key] = struct{}{}

	return true
}
