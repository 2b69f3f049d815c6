// Package attrkey validates attribute key strings before adjacent
// telemetry code attaches them to spans or metrics. The schema resolver
// itself imposes no such restriction on schema-internal strings.
package attrkey

import "regexp"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// IsValid reports whether key is non-empty and contains only letters,
// digits, '.', '_' and '-'.
func IsValid(key string) bool {
	return keyPattern.MatchString(key)
}
