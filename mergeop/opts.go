package mergeop

import "github.com/gon-format/go-gon/ir"

type mergeOpts struct {
	reporter     ir.Reporter
	onOverwrite  func(existing, incoming *ir.Node)
	objectPolicy Policy
	arrayPolicy  Policy
}

type Option func(*mergeOpts)

func newOpts(opts []Option) *mergeOpts {
	o := &mergeOpts{
		reporter:     ir.Abort,
		objectPolicy: PolicyMerge,
		arrayPolicy:  PolicyMerge,
	}
	for _, f := range opts {
		f(o)
	}
	if o.objectPolicy == nil {
		o.objectPolicy = PolicyMerge
	}
	if o.arrayPolicy == nil {
		o.arrayPolicy = PolicyMerge
	}
	return o
}

func (o *mergeOpts) report(err error) error {
	return o.reporter.Report(err)
}

// WithReporter sets the Reporter for kind mismatches. When it returns nil
// the destination is left unchanged and the operation succeeds.
func WithReporter(r ir.Reporter) Option {
	return func(o *mergeOpts) { o.reporter = r }
}

// OnOverwrite installs a callback which ShallowMerge calls before it
// replaces an existing child.
func OnOverwrite(f func(existing, incoming *ir.Node)) Option {
	return func(o *mergeOpts) { o.onOverwrite = f }
}

// WithObjectPolicy sets the DeepMerge policy for every pair of nodes
// except two arrays.
func WithObjectPolicy(p Policy) Option {
	return func(o *mergeOpts) { o.objectPolicy = p }
}

// WithArrayPolicy sets the DeepMerge policy for a pair of arrays.
func WithArrayPolicy(p Policy) Option {
	return func(o *mergeOpts) { o.arrayPolicy = p }
}
