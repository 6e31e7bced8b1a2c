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

const netflixSearchURL = "https://jobs.netflix.com/api/search?q=intern&page=1"

type netflixScraper struct {
	company string
	url     string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newNetflix(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &netflixScraper{company: company, url: netflixSearchURL, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *netflixScraper) Name() string { return "netflix" }

type netflixResponse struct {
	Records struct {
		Postings []struct {
			Text       string `json:"text"`
			ExternalID string `json:"external_id"`
			Location   string `json:"location"`
			PostedDate string `json:"posted_date"`
		} `json:"postings"`
	} `json:"records"`
}

func (s *netflixScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
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
		return nil, fmt.Errorf("netflix get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("netflix status %d", res.StatusCode)
	}

	var nr netflixResponse
	if err := json.NewDecoder(res.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("netflix decode: %w", err)
	}

	var out []domain.Posting
	for _, p := range nr.Records.Postings {
		title := strings.TrimSpace(p.Text)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParsePostedDate(p.PostedDate)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: util.CleanText(p.Location),
			URL:      "https://jobs.netflix.com/jobs/" + p.ExternalID,
			PostedAt: postedAt,
			JobID:    p.ExternalID,
		})
	}

	s.log.Debug("netflix fetch done", zap.Int("kept", len(out)))
	return out, nil
}
