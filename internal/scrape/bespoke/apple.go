package bespoke

import (
	"bytes"
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

const appleSearchURL = "https://jobs.apple.com/api/role/search"

type appleScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newApple(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &appleScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *appleScraper) Name() string { return "apple" }

type appleResponse struct {
	SearchResults []struct {
		PostingTitle string          `json:"postingTitle"`
		PostingDate  string          `json:"postingDate"`
		PositionID   string          `json:"positionId"`
		JobSummary   string          `json:"jobSummary"`
		Locations    json.RawMessage `json:"locations"`
	} `json:"searchResults"`
}

func (s *appleScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	var out []domain.Posting
	var lastErr error

	for _, query := range []string{"intern", "internship"} {
		jobs, err := s.search(ctx, query, specialtyKeywords, daysBack)
		if err != nil {
			s.log.Debug("apple query failed", zap.String("query", query), zap.Error(err))
			lastErr = err
			continue
		}
		out = append(out, jobs...)
	}

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (s *appleScraper) search(ctx context.Context, query string, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	payload, _ := json.Marshal(map[string]any{
		"query": query,
		"filters": map[string]any{
			"range": map[string]any{
				"standardWeeklyHours": map[string]any{"start": nil, "end": nil},
			},
		},
		"page":   1,
		"locale": "en-us",
		"sort":   "newest",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, appleSearchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, appleSearchURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apple post: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("apple status %d", res.StatusCode)
	}

	var ar appleResponse
	if err := json.NewDecoder(res.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("apple decode: %w", err)
	}

	var out []domain.Posting
	for _, j := range ar.SearchResults {
		title := strings.TrimSpace(j.PostingTitle)
		if title == "" || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParsePostedDate(j.PostingDate)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:     s.company,
			Title:       title,
			Location:    appleLocations(j.Locations),
			URL:         "https://jobs.apple.com/en-us/details/" + j.PositionID,
			PostedAt:    postedAt,
			Description: j.JobSummary,
			JobID:       j.PositionID,
		})
	}
	return out, nil
}

// appleLocations unwraps the locations field, which is sometimes an object
// with a name list and sometimes a plain string.
func appleLocations(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var obj struct {
		Name []string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Name) > 0 {
		return strings.Join(obj.Name, ", ")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
