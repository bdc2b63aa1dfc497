// Package algokit is a small toolbox of stateless text and numeric
// utilities, each one input in and one deterministic output out.
//
// 🚀 What is inside?
//
//	algorithms/    — the eight pure functions (reverse, palindrome, max of a
//	                 CSV line, vowel count, factorial, Fibonacci, sum 1..n,
//	                 even/odd) plus their sentinel errors
//	form/          — the front-end contract: trims input, parses integers,
//	                 maps every outcome to one display message
//	cmd/algokit/   — a CLI with one subcommand per card
//
// ✨ Why algokit?
//
//   - Pure functions – no state, no I/O, safe to call from any goroutine
//   - No silent overflow where it matters – Factorial uses math/big
//   - Explicit outcomes – "no valid numbers" is a value, not an error
//
// Quick start:
//
//	go install github.com/katalvlaran/algokit/cmd/algokit@latest
//	algokit factorial 25     # 15511210043330985984000000
//	algokit max-csv 3,7,two  # 7
package algokit
