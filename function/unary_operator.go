// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package function

// UnaryOperator represents an operation on a single operand that produces a
// result of the same type as its operand
type UnaryOperator[T any] Function[T, T]
