// SPDX-License-Identifier: MIT

package algorithms

import "math"

// Parity is the two-valued tag returned by EvenOrOdd.
type Parity string

const (
	// Even tags integers whose least significant bit is 0.
	Even Parity = "Even"
	// Odd tags integers whose least significant bit is 1.
	Odd Parity = "Odd"
)

const (
	// MaxFibonacciIndex is the largest n whose Fibonacci number fits in an int64.
	// FibonacciNth does not enforce it: larger n wrap around.
	MaxFibonacciIndex = 92

	// MaxSumToN is the largest n accepted by SumToN; n·(n+1)/2 still fits in int64.
	MaxSumToN = math.MaxUint32
)
