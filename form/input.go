// SPDX-License-Identifier: MIT

package form

import (
	"strconv"
	"strings"
)

// SafeText returns raw without leading and trailing whitespace.
func SafeText(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseIntSafe parses s as a base-10 integer with an optional sign.
// Empty text, non-digits and values outside the 32-bit signed range
// all report ok == false.
func ParseIntSafe(s string) (n int, ok bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return int(v), true
}
