// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "errors"

// ErrAsyncOfAsync is returned (wrapped) when Async is called on a sequence
// that is already async. The teacher's own misuse errors are plain panics;
// this is a constructor-time failure a caller can reasonably check for
// before it ever reaches an in-flight pipeline, so it is a typed error
// instead.
var ErrAsyncOfAsync = errors.New("lazy: sequence is already async")

// ErrUnboundedTerminal is returned by helpers that refuse to run a
// non-short-circuiting terminal against an unbounded sequence (see
// TryToArray). Direct use of ToArray on an unbounded Generate/Repeat
// sequence remains undefined behavior per contract — it is simply an
// infinite loop — exactly as the teacher's own panics-over-errors style
// leaves analogous misuse to the caller.
var ErrUnboundedTerminal = errors.New("lazy: terminal operation requires a bounded sequence")
