// Package bespoke holds per-company scrapers for employers that run fully
// custom career-search backends outside the standard ATS families. The
// registry is open: adding an employer means adding one file with its
// adapter and one Register call, nothing in the generic families changes.
package bespoke

import (
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
)

// Factory builds a bespoke scraper for the given display name.
type Factory func(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper

var registry = map[string]Factory{}

// Register binds a factory to a stable company identifier (case-insensitive).
func Register(key string, f Factory) {
	registry[strings.ToLower(strings.TrimSpace(key))] = f
}

// Lookup returns the factory for a company key, if one exists.
func Lookup(key string) (Factory, bool) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	return f, ok
}

func init() {
	Register("google", newGoogle)
	Register("alphabet", newGoogle)
	Register("amazon", newAmazon)
	Register("apple", newApple)
	Register("meta", newMeta)
	Register("facebook", newMeta)
	Register("microsoft", newMicrosoft)
	Register("nvidia", newNvidia)
	Register("tesla", newTesla)
	Register("tiktok", newTikTok)
	Register("netflix", newNetflix)
}
