package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var daysAgoRe = regexp.MustCompile(`(\d+)`)

// ParsePostedDate turns a provider's posted-date string into a time, best
// effort. It tries the shapes seen in the wild (RFC3339, YYYY-MM-DD,
// "January 2, 2006", epoch seconds/millis) before falling back to a fuzzy
// parse. Returns nil when nothing works; callers keep the posting either way.
func ParsePostedDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse("January 2, 2006", s); err == nil {
		return &t
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		var t time.Time
		if n >= 1_000_000_000_000 {
			t = time.UnixMilli(n)
		} else {
			t = time.Unix(n, 0)
		}
		return &t
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return &t
	}
	return nil
}

// ParseRelativeDate resolves Workday-style relative phrases ("Posted Today",
// "Posted Yesterday", "Posted 3 Days Ago") against now. Returns nil for
// anything else.
func ParseRelativeDate(s string, now time.Time) *time.Time {
	low := strings.ToLower(strings.TrimSpace(s))
	if low == "" {
		return nil
	}
	switch {
	case strings.Contains(low, "today"):
		return &now
	case strings.Contains(low, "yesterday"):
		t := now.AddDate(0, 0, -1)
		return &t
	case strings.Contains(low, "days ago"):
		m := daysAgoRe.FindString(low)
		if m == "" {
			return nil
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil
		}
		t := now.AddDate(0, 0, -n)
		return &t
	}
	return nil
}

// ParseEpochMillis converts a millisecond epoch (Lever's createdAt) to a
// time, nil when zero.
func ParseEpochMillis(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms)
	return &t
}
