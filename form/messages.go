// SPDX-License-Identifier: MIT

package form

// Fixed messages shown instead of a computed value.
const (
	// MsgEnterText is shown by text cards when the trimmed input is empty.
	MsgEnterText = "Please enter some text"
	// MsgInvalidNumber is shown when the input is not a 32-bit integer.
	MsgInvalidNumber = "Please enter a valid whole number"
	// MsgNonNegative is shown when the algorithm rejects a negative n.
	MsgNonNegative = "Please enter a non-negative number"
	// MsgInvalidCSV is shown when no comma-separated piece is a number.
	MsgInvalidCSV = "No valid numbers found"
	// MsgPalindrome and MsgNotPalindrome render the palindrome verdict.
	MsgPalindrome    = "Yes, it's a palindrome"
	MsgNotPalindrome = "No, it's not a palindrome"
)
