package errs

import "strings"

// sanitize normalizes values embedded in error messages so that a single
// log line stays a single line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
