package smartrecruiters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/util"
)

// Scraper reads a company's public SmartRecruiters postings (fixed page size,
// single page).
type Scraper struct {
	company string
	slug    string
	apiURL  string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

// New accepts a bare slug or any smartrecruiters.com URL carrying a
// /companies/<slug>/ segment.
func New(company, ref string, limiter *util.HostLimiter, log *zap.Logger) *Scraper {
	slug := ref
	if strings.Contains(ref, "smartrecruiters.com") {
		if i := strings.Index(ref, "/companies/"); i >= 0 {
			slug = ref[i+len("/companies/"):]
			if j := strings.Index(slug, "/"); j >= 0 {
				slug = slug[:j]
			}
		} else {
			slug = strings.ReplaceAll(strings.ToLower(company), " ", "")
		}
	}
	return &Scraper{
		company: company,
		slug:    slug,
		apiURL:  fmt.Sprintf("https://api.smartrecruiters.com/v1/companies/%s/postings", url.PathEscape(slug)),
		hc:      util.NewClient(),
		limiter: limiter,
		log:     log,
	}
}

func (s *Scraper) Name() string { return "smartrecruiters" }

type postingsResponse struct {
	Content []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Ref  string `json:"ref"`
		// Kept as a string so one malformed date cannot fail the whole
		// page decode; parsing is per record, best effort.
		ReleasedDate string `json:"releasedDate"`
		Location     struct {
			City    string `json:"city"`
			Region  string `json:"region"`
			Country string `json:"country"`
		} `json:"location"`
	} `json:"content"`
}

func (s *Scraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	u := s.apiURL + "?limit=100"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("smartrecruiters get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("smartrecruiters status %d", res.StatusCode)
	}

	var pr postingsResponse
	if err := json.NewDecoder(res.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("smartrecruiters decode: %w", err)
	}

	var out []domain.Posting
	for _, p := range pr.Content {
		title := strings.TrimSpace(p.Name)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParsePostedDate(p.ReleasedDate)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		jobURL := p.Ref
		if jobURL == "" {
			jobURL = fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", s.slug, p.ID)
		}

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: util.JoinNonEmpty(p.Location.City, p.Location.Region, p.Location.Country),
			URL:      jobURL,
			PostedAt: postedAt,
			JobID:    p.ID,
		})
	}

	s.log.Debug("smartrecruiters fetch done",
		zap.String("company", s.company),
		zap.String("slug", s.slug),
		zap.Int("kept", len(out)))
	return out, nil
}
