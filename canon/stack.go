package canon

import "github.com/DireMonarch/graph-canonical-relabel/partition"

// searchNode is a single entry on the search stack: the path of
// individualized vertices from the root, and the parent's refined
// partition, in which the path's last vertex is still to be individualized.
type searchNode struct {
	path []int
	pi   *partition.Partition
}

// searchStack is a LIFO of searchNodes, backed by a growable Go slice
// rather than a fixed-capacity array sized at n: branching factor per level
// is bounded by target-cell size, not 1, so a fixed n-sized stack would
// under-provision in general.
type searchStack struct {
	items []*searchNode
}

// push adds n to the top of the stack.
func (s *searchStack) push(n *searchNode) {
	s.items = append(s.items, n)
}

// pop removes and returns the top of the stack, or nil if empty.
func (s *searchStack) pop() *searchNode {
	if len(s.items) == 0 {
		return nil
	}
	top := len(s.items) - 1
	n := s.items[top]
	s.items[top] = nil
	s.items = s.items[:top]

	return n
}

// peek returns the top of the stack without removing it, or nil if empty.
func (s *searchStack) peek() *searchNode {
	if len(s.items) == 0 {
		return nil
	}

	return s.items[len(s.items)-1]
}

// size returns the number of nodes currently on the stack.
func (s *searchStack) size() int {
	return len(s.items)
}
