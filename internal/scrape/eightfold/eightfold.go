package eightfold

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/util"
)

// Scraper posts a keyword query against a company-specific Eightfold AI
// endpoint. Deployments disagree on whether the results array is called
// "positions" or "jobs"; both are accepted.
type Scraper struct {
	company string
	apiURL  string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func New(company, apiURL string, limiter *util.HostLimiter, log *zap.Logger) *Scraper {
	return &Scraper{
		company: company,
		apiURL:  apiURL,
		hc:      util.NewClient(),
		limiter: limiter,
		log:     log,
	}
}

func (s *Scraper) Name() string { return "eightfold" }

type position struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Location string      `json:"location"`
	URL      string      `json:"url"`
	ApplyURL string      `json:"apply_url"`
}

type searchResponse struct {
	Positions []position `json:"positions"`
	Jobs      []position `json:"jobs"`
}

func (s *Scraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	payload, _ := json.Marshal(map[string]any{
		"query":  "intern",
		"limit":  100,
		"offset": 0,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, s.apiURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eightfold post: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("eightfold status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("eightfold decode: %w", err)
	}

	results := sr.Positions
	if len(results) == 0 {
		results = sr.Jobs
	}

	var out []domain.Posting
	for _, p := range results {
		title := strings.TrimSpace(util.FirstNonEmpty(p.Name, p.Title))
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: util.CleanText(p.Location),
			URL:      util.FirstNonEmpty(p.URL, p.ApplyURL),
			JobID:    p.ID.String(),
		})
	}

	s.log.Debug("eightfold fetch done",
		zap.String("company", s.company),
		zap.Int("kept", len(out)))
	return out, nil
}
