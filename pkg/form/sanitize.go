package form

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// messageSanitizer allows the inline markup validation messages commonly
// carry and strips everything else.
func messageSanitizer() *bluemonday.Policy {
	messagePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "br", "span")
		policy.AllowAttrs("class").OnElements("span", "code")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)

		messagePolicy = policy
	})
	return messagePolicy
}
