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

const tiktokSearchURL = "https://careers.tiktok.com/api/v1/search/job/posts"

type tiktokScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newTikTok(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &tiktokScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *tiktokScraper) Name() string { return "tiktok" }

type tiktokResponse struct {
	Data struct {
		JobPostList []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishTime int64  `json:"publish_time"`
			CityInfo    struct {
				Name string `json:"name"`
			} `json:"city_info"`
		} `json:"job_post_list"`
	} `json:"data"`
}

func (s *tiktokScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	q := url.Values{}
	q.Set("keyword", "intern")
	q.Set("limit", "100")
	q.Set("offset", "0")
	q.Set("portal_type", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tiktokSearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, tiktokSearchURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tiktok get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("tiktok status %d", res.StatusCode)
	}

	var tr tiktokResponse
	if err := json.NewDecoder(res.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("tiktok decode: %w", err)
	}

	var out []domain.Posting
	for _, j := range tr.Data.JobPostList {
		title := strings.TrimSpace(j.Title)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		postedAt := util.ParseEpochMillis(j.PublishTime)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:     s.company,
			Title:       title,
			Location:    util.CleanText(j.CityInfo.Name),
			URL:         "https://careers.tiktok.com/position/" + j.ID,
			PostedAt:    postedAt,
			Description: j.Description,
			JobID:       j.ID,
		})
	}

	s.log.Debug("tiktok fetch done", zap.Int("kept", len(out)))
	return out, nil
}
