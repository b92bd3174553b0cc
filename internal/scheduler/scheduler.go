// Copyright © 2026 Yoshiki Shibata. All rights reserved.

// Package scheduler provides the deferred-callback primitive the async
// sequence builds on. Go has no microtask queue, so Immediate stands in
// for "the host's highest-priority deferred callback" by running fn on a
// freshly spawned goroutine; Interval defers by a fixed duration using
// time.AfterFunc.
package scheduler

import "time"

// Scheduler defers fn by delay, however "deferred" is defined by the
// implementation.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Immediate runs fn on a new goroutine regardless of delay — the nearest
// Go equivalent to a same-tick microtask.
type Immediate struct{}

func (Immediate) Schedule(_ time.Duration, fn func()) {
	go fn()
}

// Interval runs fn after a fixed duration, ignoring the delay argument
// passed to Schedule in favor of its own configured interval. It is the
// building block for the async driver's polling cadence.
type Interval struct {
	D time.Duration
}

func (i Interval) Schedule(_ time.Duration, fn func()) {
	time.AfterFunc(i.D, fn)
}
