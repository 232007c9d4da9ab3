package canon

import (
	"github.com/DireMonarch/graph-canonical-relabel/orbit"
	"github.com/DireMonarch/graph-canonical-relabel/partition"
)

// Result is Run's output.
type Result struct {
	// CL is the best canonical permutation discovered: CL.Lab[v] is
	// vertex v's image under the canonical labeling.
	CL *partition.Partition

	// AutoGroup is the ordered sequence of automorphism generators
	// discovered during search.
	AutoGroup []*partition.Partition

	// Theta is the orbit partition under AutoGroup.
	Theta *partition.Partition

	// MCR is the ascending list of minimum cell representatives, one per
	// Theta cell.
	MCR []int

	// NodesProcessed counts how many search nodes Run popped and
	// processed.
	NodesProcessed int
}

func newResult(group *orbit.Group) *Result {
	return &Result{
		AutoGroup: group.Generators,
		Theta:     group.Theta.Partition(),
		MCR:       group.MCR(),
	}
}
