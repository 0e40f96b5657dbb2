// Package conv provides checked integer conversions.
//
// The container keeps its sizes in int, but fixed-capacity modes promise
// that every size and gap fits a configured bit width. The helpers here
// answer "does this value fit" without silently truncating.
package conv
