package scrape

import (
	"strings"

	"internhunt/internal/domain"
)

// relevantTerms is the broad net applied alongside the configured specialty
// keywords, so a company whose board uses generic titles still surfaces.
var relevantTerms = []string{
	"research", "scientist", "engineer", "developer", "analyst",
	"software", "hardware", "systems", "platform",
}

// Relevant reports whether a posting's title clears the run-level filter:
// it must carry one of the configured intern markers, and match either a
// specialty keyword or one of the broad relevant terms. Adapters apply
// their own narrower filters first; this pass catches the ones that do not.
func Relevant(p domain.Posting, titleKeywords, specialtyKeywords []string) bool {
	title := strings.ToLower(p.Title)

	marked := false
	for _, kw := range titleKeywords {
		if kw != "" && strings.Contains(title, strings.ToLower(kw)) {
			marked = true
			break
		}
	}
	if !marked {
		return false
	}

	for _, kw := range specialtyKeywords {
		if kw != "" && strings.Contains(title, strings.ToLower(kw)) {
			return true
		}
	}
	for _, term := range relevantTerms {
		if strings.Contains(title, term) {
			return true
		}
	}
	return false
}

// Dedup drops repeated postings, keeping the first occurrence. Identity is
// the company plus job ID, falling back to the URL when the board exposes
// no stable ID. Order is preserved.
func Dedup(in []domain.Posting) []domain.Posting {
	type key struct{ company, id string }
	seen := make(map[key]bool, len(in))
	out := in[:0:0]
	for _, p := range in {
		c, id := p.DedupKey()
		k := key{c, id}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
