// Package analyzer computes descriptive statistics and a keyword-based
// sentiment label for a block of text.
//
// Analyze is pure: the same text always yields the same Result, and it is
// safe to call from many goroutines. It has no length limit of its own;
// CheckLength is provided for callers that enforce MaxTextLength.
package analyzer
