// SPDX-License-Identifier: MIT

// Package algorithms is a small library of independent, stateless text and
// numeric utilities. Every function takes a single input and returns a single
// deterministic output.
//
// 🚀 What is inside?
//
//	Text:
//	  • ReverseString          — code-point reversal
//	  • IsPalindromeNormalized — alphanumeric, case-folded palindrome test
//	  • CountVowels            — counts a, e, i, o, u (case-insensitive)
//	  • FindMaxCSV             — maximum of the numeric pieces of a CSV line
//
//	Integers:
//	  • Factorial              — arbitrary precision (*big.Int)
//	  • FibonacciNth           — iterative, fixed-width int64
//	  • SumToN                 — closed form n·(n+1)/2
//	  • EvenOrOdd              — least-significant-bit parity
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/algorithms"
//
//	f, err := algorithms.Factorial(30)
//	if errors.Is(err, algorithms.ErrInvalidArgument) {
//	  // negative input
//	}
//
//	best, ok := algorithms.FindMaxCSV("3, 7, two, 5") // 7, true
//	_, ok = algorithms.FindMaxCSV("a, b, c")          // ok == false: no result
//
// Errors:
//
//   - ErrInvalidArgument — Factorial, FibonacciNth and SumToN reject n < 0.
//   - ErrOverflow        — SumToN rejects n > MaxSumToN.
//
// FindMaxCSV never fails: "no valid numbers" is reported through its ok flag.
//
// No function keeps state or mutates its argument, so every call is safe to
// run concurrently with any other.
package algorithms
