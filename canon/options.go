package canon

import "github.com/DireMonarch/graph-canonical-relabel/partition"

// Option configures optional observation hooks for Run. Use with
// Run(g, opts...).
type Option func(*options)

// options holds Run's optional observer hooks: each fires at exactly the
// point a distributed revision would broadcast a new best label or a new
// generator, or a debug build would log search progress, but as an
// ordinary function value instead of a compile-time flag. A nil hook
// costs nothing.
type options struct {
	onNewCL           func(cl []int)
	onNewAutomorphism func(aut []int)
	onNodeProcessed   func(path []int, pi *partition.Partition)
}

func defaultOptions() options {
	return options{}
}

// WithOnNewCL installs fn to be called each time Run adopts a new best
// canonical label, with that label's permutation.
func WithOnNewCL(fn func(cl []int)) Option {
	return func(o *options) {
		o.onNewCL = fn
	}
}

// WithOnNewAutomorphism installs fn to be called each time Run discovers a
// new automorphism generator.
func WithOnNewAutomorphism(fn func(aut []int)) Option {
	return func(o *options) {
		o.onNewAutomorphism = fn
	}
}

// WithOnNodeProcessed installs fn to be called after every search node is
// processed, with the path individualized so far and the partition that
// resulted from refining it.
func WithOnNodeProcessed(fn func(path []int, pi *partition.Partition)) Option {
	return func(o *options) {
		o.onNodeProcessed = fn
	}
}
