package workday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/util"
)

// Scraper queries a tenant's Workday CXS search endpoint. It issues one paged
// POST (limit 100, offset 0) with the fixed search text "intern" and filters
// titles client-side; Workday's server-side search is too loose to trust.
type Scraper struct {
	company string
	apiURL  string
	baseURL string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

var boardRe = regexp.MustCompile(`^https://([^.]+)\.(wd\d+)\.myworkdayjobs\.com/([^/]+)/?`)

// New derives the CXS jobs endpoint from whatever Workday URL the catalog
// holds. Three shapes are handled:
//
//	https://{tenant}.{wdN}.myworkdayjobs.com/wday/cxs/{tenant}/{site}/jobs (already the API)
//	https://{tenant}.{wdN}.myworkdayjobs.com/{site}                        (public board)
//	anything else                                                          (best effort: append /jobs)
func New(company, rawURL string, limiter *util.HostLimiter, log *zap.Logger) *Scraper {
	apiURL, baseURL := parseBoardURL(rawURL)
	return &Scraper{
		company: company,
		apiURL:  apiURL,
		baseURL: baseURL,
		hc:      util.NewClient(),
		limiter: limiter,
		log:     log,
	}
}

func parseBoardURL(raw string) (apiURL, baseURL string) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "/wday/cxs/") {
		base := raw
		if i := strings.Index(raw, "/wday"); i >= 0 {
			base = raw[:i]
		}
		api := raw
		if !strings.HasSuffix(api, "/jobs") {
			api += "/jobs"
		}
		return api, base
	}

	if m := boardRe.FindStringSubmatch(raw); m != nil {
		tenant, wd, site := m[1], m[2], m[3]
		base := fmt.Sprintf("https://%s.%s.myworkdayjobs.com", tenant, wd)
		return fmt.Sprintf("%s/wday/cxs/%s/%s/jobs", base, tenant, site), base
	}

	raw = strings.TrimRight(raw, "/")
	raw = strings.TrimSuffix(raw, "/jobs")
	return raw + "/jobs", raw
}

func (s *Scraper) Name() string { return "workday" }

type searchRequest struct {
	AppliedFacets map[string]any `json:"appliedFacets"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
	SearchText    string         `json:"searchText"`
}

type searchResponse struct {
	Total       int       `json:"total"`
	JobPostings []posting `json:"jobPostings"`
}

type posting struct {
	Title         string `json:"title"`
	ExternalPath  string `json:"externalPath"`
	LocationsText string `json:"locationsText"`
	PostedOn      string `json:"postedOn"`
}

func (s *Scraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	body := searchRequest{
		AppliedFacets: map[string]any{},
		Limit:         100,
		Offset:        0,
		SearchText:    "intern",
	}
	payload, _ := json.Marshal(body)

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
		return nil, fmt.Errorf("workday post jobs: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("workday status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("workday decode: %w", err)
	}

	now := time.Now()
	var out []domain.Posting
	for _, p := range sr.JobPostings {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParseRelativeDate(p.PostedOn, now)
		if postedAt == nil {
			postedAt = util.ParsePostedDate(p.PostedOn)
		}
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: util.CleanText(p.LocationsText),
			URL:      s.baseURL + p.ExternalPath,
			PostedAt: postedAt,
			JobID:    p.ExternalPath,
		})
	}

	s.log.Debug("workday fetch done",
		zap.String("company", s.company),
		zap.Int("total", sr.Total),
		zap.Int("kept", len(out)))
	return out, nil
}
