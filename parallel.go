package proxgo

import "golang.org/x/sync/errgroup"

// run calls fn over [0, n), split into chunkSize pieces across the configured
// workers when n is large enough. Chunks are disjoint so every coordinate is
// written by exactly one goroutine. The first error returned by fn is returned
// after all chunks have finished.
func (p *L1[T]) run(n int, fn func(lo, hi int) error) error {
	if p.workers <= 1 || n < 2*p.chunkSize {
		return fn(0, n)
	}

	var g errgroup.Group
	g.SetLimit(p.workers)

	for lo := 0; lo < n; lo += p.chunkSize {
		hi := min(lo+p.chunkSize, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
