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

const googleSearchURL = "https://careers.google.com/api/v3/search/"

// googleQueries covers the intern phrasings Google's search ranks
// differently; one broad "intern" query misses several of them.
var googleQueries = []string{
	"intern machine learning", "intern data science", "intern AI",
	"internship ML", "internship data", "intern research",
	"intern software", "intern PhD", "intern applied science",
}

type googleScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newGoogle(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &googleScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *googleScraper) Name() string { return "google" }

type googleJob struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	JobTitle    string      `json:"job_title"`
	PublishDate string      `json:"publish_date"`
	PostedDate  string      `json:"posted_date"`
	Locations   []string    `json:"locations"`
	Description string      `json:"description"`
}

type googleResponse struct {
	Jobs    []googleJob `json:"jobs"`
	Results []googleJob `json:"results"`
}

func (s *googleScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	var out []domain.Posting
	var lastErr error

	for _, query := range googleQueries {
		jobs, err := s.search(ctx, query, daysBack)
		if err != nil {
			s.log.Debug("google query failed", zap.String("query", query), zap.Error(err))
			lastErr = err
			continue
		}
		out = append(out, jobs...)
	}

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	if len(out) == 0 {
		s.log.Warn("google careers API returned nothing; the endpoint may have changed")
	}
	return out, nil
}

func (s *googleScraper) search(ctx context.Context, query string, daysBack int) ([]domain.Posting, error) {
	payload, _ := json.Marshal(map[string]any{
		"distance":  50,
		"hl":        "en_US",
		"jlo":       "en_US",
		"location":  []map[string]string{{"country": "US"}},
		"q":         query,
		"sort_by":   "date",
		"page":      1,
		"page_size": 100,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleSearchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, googleSearchURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google post: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("google status %d", res.StatusCode)
	}

	var gr googleResponse
	if err := json.NewDecoder(res.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("google decode: %w", err)
	}

	jobs := gr.Jobs
	if len(jobs) == 0 {
		jobs = gr.Results
	}

	var out []domain.Posting
	for _, j := range jobs {
		title := strings.TrimSpace(util.FirstNonEmpty(j.Title, j.JobTitle))
		if title == "" {
			continue
		}

		postedAt := util.ParsePostedDate(util.FirstNonEmpty(j.PublishDate, j.PostedDate))
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		id := j.ID.String()
		jobURL := "https://careers.google.com/jobs"
		if id != "" {
			jobURL = "https://careers.google.com/jobs/results/" + id
		}

		out = append(out, domain.Posting{
			Company:     s.company,
			Title:       title,
			Location:    strings.Join(j.Locations, ", "),
			URL:         jobURL,
			PostedAt:    postedAt,
			Description: j.Description,
			JobID:       id,
		})
	}
	return out, nil
}
