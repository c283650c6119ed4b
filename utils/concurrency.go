package utils

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every index in [0, workSize) over a number of
// goroutines. Each routine pulls the next index from a shared counter, so
// uneven items balance out. routines <= 0 selects one per CPU.
// The first error stops further work from being picked up and is returned.
func SplitWork(ctx context.Context, routines int, workSize uint64, do func(ctx context.Context, workIndex uint64, routineIndex int) error) error {
	if routines <= 0 {
		routines = runtime.NumCPU()
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	var counter atomic.Uint64

	eg, ctx := errgroup.WithContext(ctx)

	for routineIndex := range routines {
		eg.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(ctx, workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}
	return eg.Wait()
}
