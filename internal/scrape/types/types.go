package types

import (
	"context"

	"internhunt/internal/domain"
)

// Scraper is one provider integration. FetchJobs returns every posting that
// carries an intern/co-op marker and matches at least one specialty keyword.
// Transport failures come back as the error (partial results are still
// returned); malformed individual records are skipped inside the adapter and
// never surface.
type Scraper interface {
	Name() string
	FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error)
}
