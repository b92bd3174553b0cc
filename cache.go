// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"sync"

	"github.com/lazyseq/lazy/internal/obslog"
)

// cache is the lazily-populated ordered buffer backing every cache-based
// operator node (sort, shuffle, reverse-of-non-indexable, flatten,
// filter-of-indexable, take-of-non-indexable, intersection, zip).
// materialize runs at most once per node even under concurrent first access, via sync.Once — two
// goroutines racing Get/Len on the same node observe one materialization.
type cache[T any] struct {
	once sync.Once
	buf  []T
}

func (c *cache[T]) materialize(fill func() []T) []T {
	c.once.Do(func() {
		c.buf = fill()
		obslog.Logger().Debug().Int("size", len(c.buf)).Msg("cache materialized")
	})
	return c.buf
}
