// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package function

// Supplier represents a supplier of results
type Supplier[T any] func() T
