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

const amazonSearchURL = "https://www.amazon.jobs/en/search.json"

type amazonScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newAmazon(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &amazonScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *amazonScraper) Name() string { return "amazon" }

type amazonResponse struct {
	Jobs []struct {
		Title       string `json:"title"`
		Location    string `json:"location"`
		JobPath     string `json:"job_path"`
		PostedDate  string `json:"posted_date"`
		Description string `json:"description"`
		IDIcims     string `json:"id_icims"`
	} `json:"jobs"`
}

func (s *amazonScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	var out []domain.Posting
	var lastErr error

	// The search endpoint ranks each phrasing separately.
	for _, term := range []string{"intern", "internship", "co-op"} {
		jobs, err := s.search(ctx, term, specialtyKeywords, daysBack)
		if err != nil {
			s.log.Debug("amazon query failed", zap.String("term", term), zap.Error(err))
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

func (s *amazonScraper) search(ctx context.Context, term string, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	q := url.Values{}
	q.Set("radius", "24km")
	q.Add("facets[]", "location")
	q.Add("facets[]", "business_category")
	q.Set("offset", "0")
	q.Set("result_limit", "100")
	q.Set("sort", "recent")
	q.Set("base_query", term)
	q.Set("country", "USA")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, amazonSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, amazonSearchURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amazon get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("amazon status %d", res.StatusCode)
	}

	var ar amazonResponse
	if err := json.NewDecoder(res.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("amazon decode: %w", err)
	}

	var out []domain.Posting
	for _, j := range ar.Jobs {
		title := strings.TrimSpace(j.Title)
		if title == "" || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		// Amazon dates arrive as "January 2, 2006", occasionally ISO.
		postedAt := util.ParsePostedDate(j.PostedDate)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:     s.company,
			Title:       title,
			Location:    util.CleanText(j.Location),
			URL:         "https://www.amazon.jobs" + j.JobPath,
			PostedAt:    postedAt,
			Description: j.Description,
			JobID:       j.IDIcims,
		})
	}
	return out, nil
}
