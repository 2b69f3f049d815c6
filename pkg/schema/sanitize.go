package schema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	metadataPolicyOnce sync.Once
	metadataPolicy     *bluemonday.Policy
)

// sanitizeMetadata strips markup from free-text metadata that ends up in
// UI labels and help text.
func sanitizeMetadata(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(metadataSanitizer().Sanitize(trimmed))
}

func metadataSanitizer() *bluemonday.Policy {
	metadataPolicyOnce.Do(func() {
		metadataPolicy = bluemonday.StrictPolicy()
	})
	return metadataPolicy
}
