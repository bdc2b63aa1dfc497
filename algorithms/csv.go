// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FindMaxCSV returns the largest number among the comma-separated pieces of csv.
//
// Algorithm:
//  1. Split on literal ',' (no quoting or escaping).
//  2. Trim surrounding whitespace from each piece.
//  3. Parse with strconv.ParseFloat; pieces that fail to parse are skipped.
//  4. Keep the running maximum of the parsed values.
//
// Numeric policy:
//   - "NaN" is skipped like any malformed piece.
//   - "Inf", "+Infinity", "-inf", ... are accepted.
//   - Literals beyond float64 range (e.g. "1e400") are accepted as ±Inf.
//
// ok is false when no piece parsed; callers must treat that as "no result",
// not as zero.
//
// Complexity: O(len(csv)) time.
func FindMaxCSV(csv string) (best float64, ok bool) {
	for _, piece := range strings.Split(csv, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(piece), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		if math.IsNaN(v) {
			continue
		}
		if !ok || v > best {
			best, ok = v, true
		}
	}

	return best, ok
}
