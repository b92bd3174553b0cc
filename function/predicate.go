// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package function

// Predicate represents a predicate (bool-valued function) of one argument.
type Predicate[T any] func(t T) bool
