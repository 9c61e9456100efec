package form

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Common mail providers used for typo hints.
var knownDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"icloud.com",
	"proton.me",
}

const maxDomainDistance = 2

// SuggestEmailDomain offers a "did you mean" correction when the email's
// domain is a near-miss of a common provider ("ann@gmial.com" →
// "ann@gmail.com"). It is a hint only — never a validation error, since
// plenty of real domains are close to the common ones. Returns ok=false
// for malformed input, exact matches, and far misses.
func SuggestEmailDomain(email string) (suggestion string, ok bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	local, domain := email[:at], strings.ToLower(email[at+1:])

	best := ""
	bestDist := maxDomainDistance + 1
	for _, known := range knownDomains {
		if domain == known {
			return "", false
		}
		if d := levenshtein.ComputeDistance(domain, known); d < bestDist {
			best = known
			bestDist = d
		}
	}
	if best == "" {
		return "", false
	}
	return local + "@" + best, true
}
