// Package fantasy computes the custom fantasy-basketball score for a single box-score line.
//
// The score is a weighted sum of nine counters plus two bonus rules: a multi-category
// bonus (double-double, triple-double) and a points milestone bonus (40+ and 50+ games).
// Compute is pure and safe to call from any number of goroutines.
package fantasy
