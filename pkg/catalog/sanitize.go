package catalog

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descPolicyOnce sync.Once
	descPolicy     *bluemonday.Policy
)

// sanitizeDescription strips catalog descriptions down to a small inline
// vocabulary so they can be dropped into HTML output unescaped.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := descSanitizer()
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

func descSanitizer() *bluemonday.Policy {
	descPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("a", "b", "strong", "i", "em", "code", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowURLSchemes("http", "https", "mailto")
		policy.RequireNoFollowOnLinks(true)
		descPolicy = policy
	})
	return descPolicy
}
