package canon

import (
	"errors"

	"github.com/DireMonarch/graph-canonical-relabel/core"
	"github.com/DireMonarch/graph-canonical-relabel/orbit"
	"github.com/DireMonarch/graph-canonical-relabel/partition"
	"github.com/DireMonarch/graph-canonical-relabel/refine"
)

// ErrNilGraph indicates Run was called with a nil *core.Graph.
var ErrNilGraph = errors.New("canon: graph is nil")

// status carries the best-so-far and automorphism-group state threaded
// through the whole search.
type status struct {
	g      *core.Graph
	basePi *partition.Partition
	opts   options
	group  *orbit.Group

	cl             *partition.Partition
	clPi           *partition.Partition
	bestInvar      invariant
	nodesProcessed int
}

// Run computes the canonical labeling and automorphism group of g. n == 0
// returns immediately with empty outputs.
//
// Every stack entry carries the parent partition pi still awaiting
// individualization of path's last vertex; a node is only ever pushed as a
// child of a non-discrete partition, so processNode always has a vertex to
// individualize. The root is handled separately: if the unit partition's
// refinement is already discrete (n <= 1, or a graph whose unit-partition
// refinement happens to be discrete), it is processed as a leaf directly
// instead of being silently skipped.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.N()
	st := &status{
		g:      g,
		basePi: partition.Unit(n),
		opts:   cfg,
		group:  orbit.NewGroup(n),
	}

	if n == 0 {
		return newResult(st.group), nil
	}

	stack := &searchStack{}
	seedSearch(g, stack, st)

	for stack.size() > 0 {
		node := stack.pop()
		newPi := processNode(g, node, stack, st)
		st.nodesProcessed++
		if cfg.onNodeProcessed != nil {
			cfg.onNodeProcessed(node.path, newPi)
		}
	}

	result := newResult(st.group)
	result.CL = st.cl
	result.NodesProcessed = st.nodesProcessed

	return result, nil
}

// seedSearch builds the root partition and either processes it as a leaf
// or pushes its initial children (pcanon.c's _first_node).
func seedSearch(g *core.Graph, stack *searchStack, st *status) {
	n := g.N()
	pi := partition.Unit(n)
	active := partition.Unit(n)
	rootPi := refine.Refine(g, pi, active)

	if partition.IsDiscrete(rootPi) {
		processLeaf(rootPi, st)
		return
	}

	pushChildren(stack, nil, rootPi)
}

// processNode individualizes node's last chosen vertex against node.pi,
// refines, and either dispatches leaf processing or pushes the next
// generation of children (pcanon.c's _process_next). It returns the
// refined partition so Run can hand it to an OnNodeProcessed observer.
func processNode(g *core.Graph, node *searchNode, stack *searchStack, st *status) *partition.Partition {
	v := node.path[len(node.path)-1]

	// Individualize v: move it to the front of its cell as a singleton,
	// keeping the rest of the cell in its existing order.
	pi := partition.Copy(node.pi)
	pos := 0
	for pi.Lab[pos] != v {
		pos++
	}
	start := pos
	for start > 0 && pi.Ptn[start-1] == 1 {
		start--
	}
	copy(pi.Lab[start+1:pos+1], pi.Lab[start:pos])
	pi.Lab[start] = v
	pi.Ptn[start] = 0

	active := &partition.Partition{
		Lab: []int{v},
		Ptn: []int{0},
	}

	newPi := refine.Refine(g, pi, active)

	if partition.IsDiscrete(newPi) {
		processLeaf(newPi, st)
		return newPi
	}

	pushChildren(stack, node.path, newPi)

	return newPi
}

// pushChildren computes pi's target cell and pushes one child per vertex,
// in reverse cell order so the stack pops them in ascending order.
func pushChildren(stack *searchStack, path []int, pi *partition.Partition) {
	target := refine.TargetCell(pi)
	start, size := partition.CellByIndex(pi, target)

	for i := start + size - 1; i >= start; i-- {
		childPath := make([]int, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = pi.Lab[i]
		stack.push(&searchNode{path: childPath, pi: pi})
	}
}

// processLeaf computes the invariant under leafPi's labeling and compares
// it to the best seen so far, adopting a new canonical label or recording
// an automorphism (pcanon.c's _process_leaf).
func processLeaf(leafPi *partition.Partition, st *status) {
	perm, err := partition.GeneratePermutation(leafPi, st.basePi)
	if err != nil {
		panic(err) // basePi and leafPi are always the same length (n)
	}
	invar := calculateInvariant(st.g, perm)

	cmp := -1
	if st.bestInvar != nil {
		cmp = compareInvariants(invar, st.bestInvar)
	}

	switch {
	case cmp < 0:
		st.cl = perm
		st.clPi = leafPi
		st.bestInvar = invar
		if st.opts.onNewCL != nil {
			st.opts.onNewCL(perm.Lab)
		}
	case cmp == 0:
		aut, err := partition.GeneratePermutation(st.clPi, leafPi)
		if err != nil {
			panic(err)
		}
		st.group.AddGenerator(aut)
		if st.opts.onNewAutomorphism != nil {
			st.opts.onNewAutomorphism(aut.Lab)
		}
	}
}
