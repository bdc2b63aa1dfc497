// SPDX-License-Identifier: MIT

package algorithms

import "math/big"

// Factorial returns n! as an arbitrary-precision integer.
//
// Factorial(0) and Factorial(1) are 1. Negative n returns ErrInvalidArgument.
// The result never overflows; the cost is O(n) big-integer multiplications.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, argErrorf("factorial", n, ErrInvalidArgument)
	}

	acc := big.NewInt(1)
	factor := new(big.Int)
	for i := 2; i <= n; i++ {
		acc.Mul(acc, factor.SetInt64(int64(i)))
	}

	return acc, nil
}

// FibonacciNth returns F(n) with F(0)=0, F(1)=1.
//
// Computed iteratively with two running values: O(n) time, O(1) space.
// The result is a fixed-width int64; for n > MaxFibonacciIndex it wraps
// around (two's-complement overflow) rather than switching to big integers.
// Negative n returns ErrInvalidArgument.
func FibonacciNth(n int) (int64, error) {
	if n < 0 {
		return 0, argErrorf("fibonacci", n, ErrInvalidArgument)
	}
	if n < 2 {
		return int64(n), nil
	}

	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, nil
}

// SumToN returns 1+2+…+n using the closed form n·(n+1)/2.
//
// The product is taken in uint64, wide enough for every n up to MaxSumToN.
// SumToN(0) is 0. Negative n returns ErrInvalidArgument; n > MaxSumToN
// returns ErrOverflow.
//
// Complexity: O(1).
func SumToN(n int) (int64, error) {
	if n < 0 {
		return 0, argErrorf("sumToN", n, ErrInvalidArgument)
	}
	if uint64(n) > MaxSumToN {
		return 0, argErrorf("sumToN", n, ErrOverflow)
	}

	u := uint64(n)

	return int64(u * (u + 1) / 2), nil
}

// EvenOrOdd classifies n by its least significant bit.
// Negative n are valid: -4 is Even, -3 is Odd.
func EvenOrOdd(n int) Parity {
	if n&1 == 0 {
		return Even
	}

	return Odd
}
