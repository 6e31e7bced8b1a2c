package domain

import "time"

// Posting is one employer job listing, normalized across ATS providers.
// Company and Title are always non-empty when a posting leaves an adapter;
// every other field tolerates emptiness.
type Posting struct {
	Company      string
	Title        string
	Location     string
	URL          string
	PostedAt     *time.Time
	Description  string
	JobID        string
	Requirements []string
}

// DedupKey identifies a posting for cross-company deduplication.
// JobID wins when the provider exposes one; otherwise the URL stands in.
func (p Posting) DedupKey() (company, id string) {
	id = p.JobID
	if id == "" {
		id = p.URL
	}
	return p.Company, id
}
