// Package catalog maps free-text employer names to known career API
// endpoints and merges company lists pulled from several sources into one
// provider set.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"internhunt/internal/domain"
)

var (
	legalSuffixRe   = regexp.MustCompile(`(?i)\s*(inc\.?|corp\.?|corporation|company|co\.?|llc|ltd\.?|plc|group|holdings?)\.?\s*$`)
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	punctRe         = regexp.MustCompile(`[^\w\s]`)
	spaceRe         = regexp.MustCompile(`\s+`)
	keyCharRe       = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// Normalize reduces an employer name to its matchable form: lower case, no
// trailing legal suffix, no parentheticals, no punctuation, single spaces.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = legalSuffixRe.ReplaceAllString(s, "")
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = punctRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Find resolves a free-text name against the known-company table. Rules
// apply in order, first hit wins: exact key, substring containment in
// either direction, then any shared word. The word rule is deliberately
// loose and will sometimes pair near-namesakes; callers rely on the rule
// order, so it stays as is.
func Find(name string) (Entry, string, bool) {
	normalized := Normalize(name)
	if normalized == "" {
		return Entry{}, "", false
	}

	if e, ok := knownCompanies[normalized]; ok {
		return e, normalized, true
	}

	keys := make([]string, 0, len(knownCompanies))
	for k := range knownCompanies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, known := range keys {
		if strings.Contains(normalized, known) || strings.Contains(known, normalized) {
			return knownCompanies[known], known, true
		}
	}

	words := map[string]bool{}
	for _, w := range strings.Fields(normalized) {
		words[w] = true
	}
	for _, known := range keys {
		for _, w := range strings.Fields(known) {
			if words[w] {
				return knownCompanies[known], known, true
			}
		}
	}

	return Entry{}, "", false
}

// configKey derives a map key from a display name: letters, digits, and
// underscores only, capped at twenty runes, numeric suffix on collision.
// Names may be non-ASCII, so the cap counts runes, not bytes.
func configKey(name string, taken map[string]domain.ProviderConfig) string {
	key := keyCharRe.ReplaceAllString(strings.ReplaceAll(name, " ", ""), "")
	if runes := []rune(key); len(runes) > 20 {
		key = string(runes[:20])
	}
	if _, exists := taken[key]; exists {
		key = key + "_" + strconv.Itoa(len(taken))
	}
	return key
}

// Generate resolves a list of free-text names into provider configs.
// Names with no catalog hit come back in the unmatched list; they surface
// later as companies with no usable API.
func Generate(names []string) (map[string]domain.ProviderConfig, []string) {
	configs := map[string]domain.ProviderConfig{}
	var unmatched []string

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		e, _, ok := Find(name)
		if !ok {
			unmatched = append(unmatched, name)
			continue
		}
		configs[configKey(name, configs)] = domain.ProviderConfig{
			Name:   name,
			Type:   e.Type,
			APIURL: e.APIURL,
		}
	}
	return configs, unmatched
}

// Merge folds candidates into dst. A candidate lands only when neither its
// key (case-insensitive) nor its display name is already present; entries
// already in dst are never overwritten. Candidate keys are visited in
// sorted order so merges are repeatable.
func Merge(dst map[string]domain.ProviderConfig, candidates map[string]domain.ProviderConfig) int {
	keys := map[string]bool{}
	names := map[string]bool{}
	for k, v := range dst {
		keys[strings.ToLower(k)] = true
		if v.Name != "" {
			names[strings.ToLower(v.Name)] = true
		}
	}

	ordered := make([]string, 0, len(candidates))
	for k := range candidates {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	added := 0
	for _, k := range ordered {
		v := candidates[k]
		if keys[strings.ToLower(k)] || (v.Name != "" && names[strings.ToLower(v.Name)]) {
			continue
		}
		dst[k] = v
		keys[strings.ToLower(k)] = true
		if v.Name != "" {
			names[strings.ToLower(v.Name)] = true
		}
		added++
	}
	return added
}
