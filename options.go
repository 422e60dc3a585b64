package pixproc

// Option configures an Engine during creation.
//
// Example:
//
//	// All cores, default kernel cache
//	e := pixproc.NewEngine()
//
//	// Four workers and a larger cache for many distinct sigmas
//	e := pixproc.NewEngine(pixproc.WithWorkers(4), pixproc.WithKernelCacheSize(256))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers         int
	kernelCacheSize int
	sequential      bool
}

// DefaultKernelCacheSize is the number of Gaussian kernels an Engine keeps
// unless WithKernelCacheSize says otherwise.
const DefaultKernelCacheSize = 64

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		workers:         0, // GOMAXPROCS
		kernelCacheSize: DefaultKernelCacheSize,
	}
}

// WithWorkers sets the number of worker goroutines.
// n <= 0 uses GOMAXPROCS. n == 1 is equivalent to WithSequential.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithKernelCacheSize sets how many Gaussian kernels are memoized.
// n <= 0 means unlimited.
func WithKernelCacheSize(n int) Option {
	return func(o *engineOptions) {
		o.kernelCacheSize = n
	}
}

// WithSequential runs every operation on the calling goroutine.
// No worker goroutines are started.
func WithSequential() Option {
	return func(o *engineOptions) {
		o.sequential = true
	}
}
