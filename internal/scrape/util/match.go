package util

import (
	"strings"
	"time"
)

// internMarkers is the fixed set of internship/co-op marker terms every
// adapter checks client-side, even when the provider supports server-side
// search ("intern" also covers "internship").
var internMarkers = []string{"intern", "internship", "co-op", "coop"}

// IsInternTitle reports whether the title carries an internship/co-op marker.
func IsInternTitle(title string) bool {
	t := strings.ToLower(title)
	for _, m := range internMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

// MatchesAnyKeyword reports whether the title contains any of the keywords,
// case-insensitive. An empty keyword list matches nothing.
func MatchesAnyKeyword(title string, keywords []string) bool {
	t := strings.ToLower(title)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// WithinDays reports whether the posting date falls inside the lookback
// window. A missing date always passes: postings are never excluded solely
// for absent date metadata.
func WithinDays(postedAt *time.Time, daysBack int) bool {
	if postedAt == nil || postedAt.IsZero() {
		return true
	}
	cutoff := time.Now().AddDate(0, 0, -daysBack)
	return !postedAt.Before(cutoff)
}
