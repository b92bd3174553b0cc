// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"fmt"
	"time"

	"github.com/lazyseq/lazy/function"
	"github.com/lazyseq/lazy/internal/obslog"
	"github.com/lazyseq/lazy/internal/scheduler"
)

// Async re-expresses iteration of parent through sched: each element is
// delivered to the visitor from inside a scheduled callback instead of
// directly on the caller's goroutine, the way a host event loop would
// defer a generator's continuation. Wrapping an already-async sequence is
// a constructor-time misuse and returns ErrAsyncOfAsync.
func Async[T any](parent Sequence[T], sched scheduler.Scheduler) (Sequence[T], error) {
	if _, ok := parent.(*asyncNode[T]); ok {
		return nil, fmt.Errorf("lazy: Async(%T): %w", parent, ErrAsyncOfAsync)
	}
	n := &asyncNode[T]{parent: parent, sched: sched}
	n.self = n
	return n, nil
}

type asyncNode[T any] struct {
	base[T]
	parent Sequence[T]
	sched  scheduler.Scheduler
}

// Each drives parent element-by-element, handing each (value, index) pair
// to visitor from inside a scheduled callback and blocking the caller's
// goroutine on a handshake channel until that callback runs — preserving
// in-order, one-at-a-time delivery despite the indirection.
func (n *asyncNode[T]) Each(visitor function.Visitor[T]) {
	stop := false
	n.parent.Each(func(v T, i int) bool {
		if stop {
			return false
		}
		ack := make(chan bool, 1)
		n.sched.Schedule(0, func() {
			obslog.Logger().Debug().Int("index", i).Msg("async step scheduled")
			ack <- visitor(v, i)
		})
		if !<-ack {
			stop = true
			return false
		}
		return true
	})
}
