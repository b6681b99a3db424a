package categorizr

import (
	"regexp"
	"strings"
)

// userAgent carries the raw agent string together with its lower-cased form,
// so repeated containment checks in one cascade fold the case only once.
type userAgent struct {
	raw   string
	lower string
}

func newUserAgent(s string) userAgent {
	return userAgent{raw: s, lower: strings.ToLower(s)}
}

// contains reports whether needle occurs anywhere in the agent, ignoring case.
// An empty needle is always found.
func (u userAgent) contains(needle string) bool {
	return strings.Contains(u.lower, strings.ToLower(needle))
}

// search reports whether re matches anywhere in the raw agent. Case
// sensitivity is whatever re was compiled with.
func (u userAgent) search(re *regexp.Regexp) bool {
	return re.MatchString(u.raw)
}
