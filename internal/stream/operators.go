package stream

import (
	"context"
	"sync"
	"time"
)

// Throttle limits in to at most one value per window without losing the
// last value of a burst. The first value passes through immediately; values
// arriving inside the window are collapsed into the latest one, which is
// emitted when the window closes. A non-positive window disables
// throttling. The returned channel closes when in closes or ctx is done.
func Throttle[T any](ctx context.Context, in <-chan T, window time.Duration) <-chan T {
	if window <= 0 {
		return Map(ctx, in, func(v T) T { return v })
	}

	out := make(chan T)
	go func() {
		defer close(out)

		var (
			pending    T
			hasPending bool
			timer      *time.Timer
			timerC     <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		emit := func(v T) bool {
			select {
			case out <- v:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					if hasPending {
						emit(pending)
					}
					return
				}
				if timerC != nil {
					pending, hasPending = v, true
					continue
				}
				if !emit(v) {
					return
				}
				if timer == nil {
					timer = time.NewTimer(window)
				} else {
					timer.Reset(window)
				}
				timerC = timer.C
			case <-timerC:
				if !hasPending {
					timerC = nil
					continue
				}
				v := pending
				var zero T
				pending, hasPending = zero, false
				if !emit(v) {
					return
				}
				timer.Reset(window)
			}
		}
	}()

	return out
}

// Distinct drops values equal to the previously emitted one.
func Distinct[T comparable](ctx context.Context, in <-chan T) <-chan T {
	return DistinctFunc(ctx, in, func(a, b T) bool { return a == b })
}

// DistinctFunc drops values that equal reports as unchanged.
func DistinctFunc[T any](ctx context.Context, in <-chan T, equal func(a, b T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)

		var (
			last    T
			hasLast bool
		)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if hasLast && equal(last, v) {
					continue
				}
				last, hasLast = v, true
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Map applies fn to every value of in.
func Map[T, R any](ctx context.Context, in <-chan T, fn func(T) R) <-chan R {
	out := make(chan R)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- fn(v):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Filter passes only the values keep accepts.
func Filter[T any](ctx context.Context, in <-chan T, keep func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if !keep(v) {
					continue
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Merge fans in all inputs. The output closes once every input is closed or
// ctx is done.
func Merge[T any](ctx context.Context, ins ...<-chan T) <-chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(ins))
	for _, in := range ins {
		go func(in <-chan T) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- v:
					case <-ctx.Done():
						return
					}
				}
			}
		}(in)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Derive recomputes a view every time trigger fires, throttled by window
// and deduplicated with equal. It is the building block for every public
// read of the event aggregator.
func Derive[S, T any](
	ctx context.Context,
	trigger <-chan S,
	window time.Duration,
	compute func() T,
	equal func(a, b T) bool,
) <-chan T {
	throttled := Throttle(ctx, trigger, window)
	computed := Map(ctx, throttled, func(S) T { return compute() })
	return DistinctFunc(ctx, computed, equal)
}
