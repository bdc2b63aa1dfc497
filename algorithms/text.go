// SPDX-License-Identifier: MIT

package algorithms

import (
	"strings"
	"unicode"
)

// vowels is the fixed set counted by CountVowels.
const vowels = "aeiou"

// ReverseString returns s with its code points in reverse order.
//
// The reversal is naive: a grapheme built from several code points
// (e.g. "e" + U+0301) is split and its parts swap places.
// Reversing "" yields "". For valid UTF-8 input ReverseString is an involution.
//
// Complexity: O(len(s)) time and space.
func ReverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// IsPalindromeNormalized reports whether s reads the same in both directions
// once every non letter/digit is removed and the rest is lower-cased.
//
// An input with no letters or digits (including "") is a palindrome.
//
// Complexity: O(len(s)) time, O(len(s)) space for the filtered copy.
func IsPalindromeNormalized(s string) bool {
	filtered := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			filtered = append(filtered, unicode.ToLower(r))
		}
	}

	// two pointers meeting in the middle
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		if filtered[i] != filtered[j] {
			return false
		}
	}

	return true
}

// CountVowels returns how many code points of lower-cased s are one of
// a, e, i, o, u. Accented vowels, 'y', digits and punctuation do not count.
func CountVowels(s string) int {
	count := 0
	for _, r := range strings.ToLower(s) {
		if strings.ContainsRune(vowels, r) {
			count++
		}
	}

	return count
}
