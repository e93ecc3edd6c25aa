package medianfilter

import "runtime"

// config holds the run-time configuration recognized by the filter entry
// points (spec.md section 6): currently just worker_count, which affects
// performance, not results.
type config struct {
	workerCount int
}

func defaultConfig() config {
	return config{workerCount: runtime.GOMAXPROCS(0)}
}

// Option configures a Gray8/Float32 call. Following the teacher's split
// between a precomputed, reusable table (NewGammaTable) and the per-call
// entry point (RGBAGammaWithTable), options are applied once per call
// rather than carried as package-level mutable state.
type Option func(*config)

// WithWorkerCount overrides the number of tiles processed concurrently.
// n <= 0 is ignored, leaving the current setting in place (host
// concurrency unless an earlier option changed it).
func WithWorkerCount(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workerCount = n
		}
	}
}

func resolveConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
