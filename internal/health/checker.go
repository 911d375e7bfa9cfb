package health

import (
	"context"
	"sync"
	"time"
)

const defaultTimeout = 5 * time.Second

const (
	StatusUp   = "up"
	StatusDown = "down"
)

type Probe struct {
	Name string

	// Critical probes mark the whole service degraded when they fail.
	Critical bool
	Check    func(ctx context.Context) error
}

type Result struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

type Checker struct {
	probes  []Probe
	timeout time.Duration
}

func NewChecker(timeout time.Duration, probes ...Probe) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Checker{probes: probes, timeout: timeout}
}

// Run executes every probe concurrently, each bounded by the checker timeout.
// Results keep the registration order. healthy is false when a critical
// probe failed.
func (c *Checker) Run(ctx context.Context) (healthy bool, results []Result) {
	results = make([]Result, len(c.probes))

	var wg sync.WaitGroup

	for i, probe := range c.probes {
		wg.Add(1)

		go func(i int, probe Probe) {
			defer wg.Done()

			probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			start := time.Now()
			err := probe.Check(probeCtx)

			results[i] = Result{
				Name:      probe.Name,
				Status:    StatusUp,
				LatencyMS: time.Since(start).Milliseconds(),
			}

			if err != nil {
				results[i].Status = StatusDown
				results[i].Error = err.Error()
			}
		}(i, probe)
	}

	wg.Wait()

	healthy = true
	for i, probe := range c.probes {
		if probe.Critical && results[i].Status == StatusDown {
			healthy = false
		}
	}

	return healthy, results
}
