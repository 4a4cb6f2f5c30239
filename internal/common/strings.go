package common

import "strings"

// NormalizeEmail strips surrounding whitespace, including the line ending
// left behind by a line read. Case is kept: lookups are exact matches.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
