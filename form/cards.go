// SPDX-License-Identifier: MIT

package form

import (
	"strconv"

	"github.com/katalvlaran/algokit/algorithms"
)

// Handler turns raw captured text into the string a card displays.
type Handler func(raw string) string

// Card is one input field, one action and one output field.
type Card struct {
	Name   string // stable identifier, e.g. "max-csv"
	Title  string // human-readable caption
	Handle Handler
}

// Cards returns every card in display order.
func Cards() []Card {
	return []Card{
		{Name: "reverse", Title: "Reverse a string", Handle: Reverse},
		{Name: "palindrome", Title: "Palindrome check (ignores case and punctuation)", Handle: Palindrome},
		{Name: "max-csv", Title: "Maximum of comma-separated numbers", Handle: MaxCSV},
		{Name: "vowels", Title: "Count vowels", Handle: Vowels},
		{Name: "factorial", Title: "Factorial (arbitrary precision)", Handle: Factorial},
		{Name: "fibonacci", Title: "N-th Fibonacci number", Handle: Fibonacci},
		{Name: "sum-to-n", Title: "Sum of 1..N", Handle: SumToN},
		{Name: "even-odd", Title: "Even or odd", Handle: EvenOdd},
	}
}

// Lookup returns the card registered under name.
func Lookup(name string) (Card, bool) {
	for _, c := range Cards() {
		if c.Name == name {
			return c, true
		}
	}

	return Card{}, false
}

// Reverse shows the input reversed.
func Reverse(raw string) string {
	return textCard(raw, algorithms.ReverseString)
}

// Palindrome shows whether the normalized input is a palindrome.
func Palindrome(raw string) string {
	return textCard(raw, func(s string) string {
		if algorithms.IsPalindromeNormalized(s) {
			return MsgPalindrome
		}
		return MsgNotPalindrome
	})
}

// Vowels shows the vowel count of the input.
func Vowels(raw string) string {
	return textCard(raw, func(s string) string {
		return strconv.Itoa(algorithms.CountVowels(s))
	})
}

// MaxCSV shows the largest number of the list. It has no empty-input
// message: an empty list is simply one with no valid numbers.
func MaxCSV(raw string) string {
	best, ok := algorithms.FindMaxCSV(SafeText(raw))
	if !ok {
		return MsgInvalidCSV
	}

	return strconv.FormatFloat(best, 'g', -1, 64)
}

// Factorial shows n! in full.
func Factorial(raw string) string {
	return integerCard(raw, func(n int) (string, error) {
		f, err := algorithms.Factorial(n)
		if err != nil {
			return "", err
		}
		return f.String(), nil
	})
}

// Fibonacci shows F(n).
func Fibonacci(raw string) string {
	return integerCard(raw, func(n int) (string, error) {
		f, err := algorithms.FibonacciNth(n)
		return strconv.FormatInt(f, 10), err
	})
}

// SumToN shows 1+2+…+n.
func SumToN(raw string) string {
	return integerCard(raw, func(n int) (string, error) {
		s, err := algorithms.SumToN(n)
		return strconv.FormatInt(s, 10), err
	})
}

// EvenOdd shows "Even" or "Odd"; negative numbers are accepted.
func EvenOdd(raw string) string {
	return integerCard(raw, func(n int) (string, error) {
		return string(algorithms.EvenOrOdd(n)), nil
	})
}

// textCard trims raw and runs fn, or asks for text when nothing is left.
func textCard(raw string, fn func(string) string) string {
	text := SafeText(raw)
	if text == "" {
		return MsgEnterText
	}

	return fn(text)
}

// integerCard parses raw and maps a rejected argument to MsgNonNegative.
// Input is capped at 32 bits, so ErrInvalidArgument is the only error fn
// can return (SumToN overflows only past math.MaxUint32).
func integerCard(raw string, fn func(int) (string, error)) string {
	n, ok := ParseIntSafe(SafeText(raw))
	if !ok {
		return MsgInvalidNumber
	}

	out, err := fn(n)
	if err != nil {
		return MsgNonNegative
	}

	return out
}
