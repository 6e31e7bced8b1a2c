package bespoke

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
)

const microsoftSearchURL = "https://gcsservices.careers.microsoft.com/search/api/v1/search"

type microsoftScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newMicrosoft(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &microsoftScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *microsoftScraper) Name() string { return "microsoft" }

type microsoftResponse struct {
	OperationResult struct {
		Result struct {
			Jobs []struct {
				JobID       string `json:"jobId"`
				Title       string `json:"title"`
				PostingDate string `json:"postingDate"`
				Description string `json:"description"`
				Properties  struct {
					Locations []string `json:"locations"`
				} `json:"properties"`
			} `json:"jobs"`
		} `json:"result"`
	} `json:"operationResult"`
}

func (s *microsoftScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	var out []domain.Posting
	var lastErr error

	for _, term := range []string{"intern", "internship"} {
		jobs, err := s.search(ctx, term, specialtyKeywords, daysBack)
		if err != nil {
			s.log.Debug("microsoft query failed", zap.String("term", term), zap.Error(err))
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

func (s *microsoftScraper) search(ctx context.Context, term string, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	q := url.Values{}
	q.Set("q", term)
	q.Set("pg", "1")
	q.Set("pgSz", "100")
	q.Set("o", "Recent")
	q.Set("flt", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, microsoftSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, microsoftSearchURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("microsoft get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("microsoft status %d", res.StatusCode)
	}

	var mr microsoftResponse
	if err := json.NewDecoder(res.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("microsoft decode: %w", err)
	}

	var out []domain.Posting
	for _, j := range mr.OperationResult.Result.Jobs {
		title := strings.TrimSpace(j.Title)
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
			Location:    strings.Join(j.Properties.Locations, ", "),
			URL:         "https://careers.microsoft.com/us/en/job/" + j.JobID,
			PostedAt:    postedAt,
			Description: j.Description,
			JobID:       j.JobID,
		})
	}
	return out, nil
}
