// Package scrape turns a set of company provider entries into fetched,
// filtered, deduplicated postings. It owns the adapter resolver and the
// bounded worker pipeline that drives the adapters.
package scrape

import (
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/bespoke"
	"internhunt/internal/scrape/eightfold"
	"internhunt/internal/scrape/greenhouse"
	"internhunt/internal/scrape/lever"
	"internhunt/internal/scrape/smartrecruiters"
	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
	"internhunt/internal/scrape/workday"
)

// Resolve picks the adapter for one company entry. Bespoke registrations win
// over everything; after that the declared provider type decides, and as a
// last resort the API URL's hostname is sniffed for a known ATS family.
// A nil return means no adapter can serve the company.
func Resolve(key string, pc domain.ProviderConfig, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	name := pc.Name
	if name == "" {
		name = key
	}

	if f, ok := bespoke.Lookup(key); ok {
		return f(name, limiter, log)
	}
	if f, ok := bespoke.Lookup(name); ok {
		return f(name, limiter, log)
	}
	// Catalog entries carry the bespoke identifier as their type.
	if f, ok := bespoke.Lookup(pc.Type); ok {
		return f(name, limiter, log)
	}

	switch strings.ToLower(strings.TrimSpace(pc.Type)) {
	case "workday":
		return workday.New(name, pc.APIURL, limiter, log)
	case "greenhouse":
		return greenhouse.New(name, pc.APIURL, limiter, log)
	case "lever":
		return lever.New(name, pc.APIURL, limiter, log)
	case "smartrecruiters":
		return smartrecruiters.New(name, pc.APIURL, limiter, log)
	case "eightfold":
		return eightfold.New(name, pc.APIURL, limiter, log)
	}

	u := strings.ToLower(pc.APIURL)
	switch {
	case strings.Contains(u, "myworkdayjobs.com"):
		return workday.New(name, pc.APIURL, limiter, log)
	case strings.Contains(u, "greenhouse.io"):
		return greenhouse.New(name, pc.APIURL, limiter, log)
	case strings.Contains(u, "lever.co"):
		return lever.New(name, pc.APIURL, limiter, log)
	case strings.Contains(u, "smartrecruiters.com"):
		return smartrecruiters.New(name, pc.APIURL, limiter, log)
	case strings.Contains(u, "eightfold.ai"):
		return eightfold.New(name, pc.APIURL, limiter, log)
	}

	return nil
}
