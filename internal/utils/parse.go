// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int, returning def when the string is
// empty or not a valid integer.
//
// Example:
//
//	n := utils.AtoiDefault("7", 0) // returns 7
//	n = utils.AtoiDefault("", 3)   // returns 3
//	n = utils.AtoiDefault("x", 3)  // returns 3
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
