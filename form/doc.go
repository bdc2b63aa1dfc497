// SPDX-License-Identifier: MIT

// Package form is the input/outcome contract between a one-field-per-card
// front end (screen, CLI, chat bot…) and package algorithms.
//
// Each card takes the raw captured text and returns the string to display:
//
//   - SafeText trims surrounding whitespace before any text card runs.
//   - ParseIntSafe turns text into a 32-bit integer, or reports failure.
//   - Handlers map every outcome to exactly one message: empty input,
//     invalid number, negative argument, "no valid numbers", or the value.
//
// Cards() lists the handlers in display order.
package form
