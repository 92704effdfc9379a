package extractor

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

// Addresses matching these fragments are page plumbing, not the business.
var emailNoise = []string{"google", "schema.org", "example.com", "sentry", "gstatic"}

var socialPatterns = map[string]*regexp.Regexp{
	"facebook":  regexp.MustCompile(`(?:https?://)?(?:www\.)?facebook\.com/[\w\-.]+`),
	"instagram": regexp.MustCompile(`(?:https?://)?(?:www\.)?instagram\.com/[\w\-.]+`),
	"twitter":   regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:twitter|x)\.com/[\w\-.]+`),
	"linkedin":  regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/(?:company|in)/[\w\-.]+`),
	"youtube":   regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/[\w\-.]+`),
}

// FindEmail scans raw page content for the first plausible business email.
// Returns "" when nothing usable is present.
func FindEmail(content string) string {
	for _, candidate := range emailRegex.FindAllString(content, -1) {
		lower := strings.ToLower(candidate)
		noisy := false
		for _, fragment := range emailNoise {
			if strings.Contains(lower, fragment) {
				noisy = true
				break
			}
		}
		if !noisy {
			return candidate
		}
	}
	return ""
}

// FindSocials scans raw page content for social profile links, one per
// platform. Returns nil when none are found.
func FindSocials(content string) map[string]string {
	var socials map[string]string
	for platform, pattern := range socialPatterns {
		if match := pattern.FindString(content); match != "" {
			if socials == nil {
				socials = make(map[string]string)
			}
			socials[platform] = match
		}
	}
	return socials
}
