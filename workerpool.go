package gir

import "sync"

// RunBounded runs fn(i) for i in [0,n) across NumServe() workers pulling
// from a bounded channel of depth ChanDepth(), blocking the producer when
// the queue is full (spec §5 "fixed-size worker pool... bounded work
// queue... backpressure by blocking the producer"). It returns once every
// index has been processed.
func RunBounded(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := NumServe()
	if workers > n {
		workers = n
	}

	jobs := make(chan int, ChanDepth())
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
