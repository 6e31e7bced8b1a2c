package lever

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/util"
)

// Scraper reads a company's public Lever postings feed.
type Scraper struct {
	company string
	slug    string
	apiURL  string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

// New accepts either a bare slug or a jobs.lever.co/<slug> URL.
func New(company, leverRef string, limiter *util.HostLimiter, log *zap.Logger) *Scraper {
	slug := leverRef
	if i := strings.Index(leverRef, "lever.co/"); i >= 0 {
		slug = leverRef[i+len("lever.co/"):]
		if j := strings.Index(slug, "/"); j >= 0 {
			slug = slug[:j]
		}
	}
	return &Scraper{
		company: company,
		slug:    slug,
		apiURL:  fmt.Sprintf("https://api.lever.co/v0/postings/%s?mode=json", slug),
		hc:      util.NewClient(),
		limiter: limiter,
		log:     log,
	}
}

func (s *Scraper) Name() string { return "lever" }

type posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	HostedURL  string `json:"hostedUrl"`
	CreatedAt  int64  `json:"createdAt"` // ms epoch
	Categories struct {
		Location string `json:"location"`
	} `json:"categories"`
	Description string `json:"descriptionPlain"`
}

func (s *Scraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, s.apiURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("lever status %d", res.StatusCode)
	}

	var postings []posting
	if err := json.NewDecoder(res.Body).Decode(&postings); err != nil {
		return nil, fmt.Errorf("lever decode: %w", err)
	}

	var out []domain.Posting
	for _, p := range postings {
		title := strings.TrimSpace(p.Text)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParseEpochMillis(p.CreatedAt)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:     s.company,
			Title:       title,
			Location:    util.CleanText(p.Categories.Location),
			URL:         p.HostedURL,
			PostedAt:    postedAt,
			Description: p.Description,
			JobID:       p.ID,
		})
	}

	s.log.Debug("lever fetch done",
		zap.String("company", s.company),
		zap.String("slug", s.slug),
		zap.Int("kept", len(out)))
	return out, nil
}
