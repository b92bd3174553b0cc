// Copyright © 2020 Yoshiki Shibata. All rights reserved.

package lazy

// Number permits any type usable with Sum, Range, and DefaultCompare.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
