package uischema

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// maxSanitizePasses bounds the unescape/sanitize loop for nested entity
// encodings.
const maxSanitizePasses = 4

// sanitizeText strips any markup from display strings, including markup
// hidden behind entity encoding. Layout text ends up in terminals and HTML
// alike, so only plain text survives. Input that does not settle within
// maxSanitizePasses is dropped.
func sanitizeText(raw string) string {
	current := strings.TrimSpace(raw)
	for pass := 0; pass < maxSanitizePasses; pass++ {
		if current == "" {
			return ""
		}
		decoded := html.UnescapeString(current)
		next := strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(decoded)))
		if next == current {
			return next
		}
		current = next
	}
	return ""
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
