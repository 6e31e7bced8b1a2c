package bespoke

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
)

const teslaStateURL = "https://www.tesla.com/cua-api/apps/careers/state"

// Tesla exposes its whole careers board as one state blob rather than a
// search API, so the adapter pulls everything and filters locally.
type teslaScraper struct {
	company string
	url     string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newTesla(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &teslaScraper{company: company, url: teslaStateURL, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *teslaScraper) Name() string { return "tesla" }

type teslaState struct {
	Listings []struct {
		ID          json.Number `json:"id"`
		Title       string      `json:"title"`
		Location    string      `json:"location"`
		PostingDate string      `json:"postingDate"`
		CreatedDate string      `json:"createdDate"`
		Description string      `json:"description"`
	} `json:"listings"`
}

func (s *teslaScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, s.url); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tesla get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("tesla status %d", res.StatusCode)
	}

	var state teslaState
	if err := json.NewDecoder(res.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("tesla decode: %w", err)
	}

	var out []domain.Posting
	for _, l := range state.Listings {
		title := strings.TrimSpace(l.Title)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParsePostedDate(util.FirstNonEmpty(l.PostingDate, l.CreatedDate))
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:     s.company,
			Title:       title,
			Location:    util.CleanText(l.Location),
			URL:         "https://www.tesla.com/careers/search/job/" + l.ID.String(),
			PostedAt:    postedAt,
			Description: l.Description,
			JobID:       l.ID.String(),
		})
	}

	s.log.Debug("tesla fetch done", zap.Int("kept", len(out)))
	return out, nil
}
