package parallelisation

// StoreOptions describes how an ExecutionGroup runs what was registered.
type StoreOptions struct {
	stopOnFirstError bool
	sequential       bool
	reverse          bool
	joinErrors       bool
	onlyOnce         bool
	workers          int
}

// StoreOption amends store options. A nil input stands for the default options.
type StoreOption func(*StoreOptions) *StoreOptions

func newOption(set func(o *StoreOptions)) StoreOption {
	return func(o *StoreOptions) *StoreOptions {
		if o == nil {
			o = DefaultOptions()
		}
		set(o)
		return o
	}
}

// Merge enables every flag set in either o or opts and keeps the largest worker limit.
func (o *StoreOptions) Merge(opts *StoreOptions) *StoreOptions {
	if opts == nil {
		return o
	}
	o.stopOnFirstError = o.stopOnFirstError || opts.stopOnFirstError
	o.sequential = o.sequential || opts.sequential
	o.reverse = o.reverse || opts.reverse
	o.joinErrors = o.joinErrors || opts.joinErrors
	o.onlyOnce = o.onlyOnce || opts.onlyOnce
	o.workers = max(o.workers, opts.workers)
	return o
}

// Options converts o back into a list of options, so that it can be amended further.
func (o *StoreOptions) Options() []StoreOption {
	return []StoreOption{func(opts *StoreOptions) *StoreOptions {
		if o == nil {
			return DefaultOptions().Merge(opts)
		}
		return o.Merge(opts)
	}}
}

var (
	// StopOnFirstError stops the execution on the first error, which is returned.
	StopOnFirstError = newOption(func(o *StoreOptions) {
		o.stopOnFirstError = true
		o.joinErrors = false
	})
	// JoinErrors returns all the errors raised rather than the first one. It cancels StopOnFirstError.
	JoinErrors = newOption(func(o *StoreOptions) {
		o.stopOnFirstError = false
		o.joinErrors = true
	})
	// OnlyOnce ensures a registered function is executed once at most, however many times the group is executed.
	OnlyOnce = newOption(func(o *StoreOptions) { o.onlyOnce = true })
	// Parallel executes the registered functions concurrently.
	Parallel = newOption(func(o *StoreOptions) { o.sequential = false })
	// Sequential executes the registered functions one after the other, in registration order.
	Sequential = newOption(func(o *StoreOptions) { o.sequential = true })
	// SequentialInReverse executes the registered functions one after the other, last registered first.
	SequentialInReverse = newOption(func(o *StoreOptions) {
		o.sequential = true
		o.reverse = true
	})
)

// Workers limits the number of functions executed concurrently. It implies Parallel.
func Workers(workers int) StoreOption {
	return newOption(func(o *StoreOptions) {
		o.workers = workers
		o.sequential = false
	})
}

// WithOptions builds store options from a list of options applied in order.
func WithOptions(option ...StoreOption) (opts *StoreOptions) {
	for i := range option {
		opts = option[i](opts)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return
}

// DefaultOptions returns the default store options.
func DefaultOptions() *StoreOptions {
	return &StoreOptions{}
}
