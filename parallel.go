package golingo

import (
	"context"
	"sync"
)

// DefaultWorkers is the worker pool size used by ResolveAll when the
// caller passes a non-positive count.
const DefaultWorkers = 4

// ResolveAll resolves a batch of texts concurrently using a bounded
// worker pool. Results are returned in input order. Like Resolve, it
// never fails: unresolvable texts come back unchanged.
func (r *Resolver) ResolveAll(ctx context.Context, texts []string, from, to string, workers int) []string {
	if len(texts) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	results := make([]string, len(texts))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.Resolve(ctx, texts[i], from, to)
			}
		}()
	}

	for i := range texts {
		select {
		case <-ctx.Done():
			// Stop dispatching; unprocessed texts fall back to themselves.
			for j := i; j < len(texts); j++ {
				results[j] = texts[j]
			}
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	return results
}
