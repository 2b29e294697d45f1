// Package fanout provides the bounded data-parallel fan-out used by
// bulletin board batch verification: one transcript per task, never
// shared across goroutines, joined with errgroup.
package fanout

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel runs f(0), f(1), ..., f(n-1) concurrently across a bounded
// worker pool and waits for all of them to finish.
type Parallel func(n int, f func(i int))

// Default is the errgroup-backed Parallel implementation used unless a
// caller substitutes its own (§9 "Parallelism abstraction").
func Default(n int, f func(i int)) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			f(i)
			return nil
		})
	}
	_ = g.Wait()
}
