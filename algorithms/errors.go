// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "algorithms: ". Operations wrap these
// sentinels with the call that produced them; match with errors.Is.
var (
	// ErrInvalidArgument is returned by Factorial, FibonacciNth and SumToN
	// when n is negative.
	ErrInvalidArgument = errors.New("algorithms: n must be non-negative")

	// ErrOverflow is returned by SumToN when the closed form would not fit
	// in an int64 (n > MaxSumToN).
	ErrOverflow = errors.New("algorithms: result overflows int64")
)

// argErrorf tags err with the operation name and its argument.
func argErrorf(op string, n int, err error) error {
	return fmt.Errorf("%s(%d): %w", op, n, err)
}
