package bespoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
)

const (
	nvidiaJobsURL = "https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs"
	nvidiaSiteURL = "https://nvidia.wd5.myworkdayjobs.com/en-US/NVIDIAExternalCareerSite"
)

// Nvidia runs stock Workday but its tenant rejects requests that do not
// carry matching Origin/Referer headers, and it reports posting dates only
// as relative phrases, so it gets its own adapter.
type nvidiaScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newNvidia(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &nvidiaScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *nvidiaScraper) Name() string { return "nvidia" }

type nvidiaResponse struct {
	JobPostings []struct {
		Title         string `json:"title"`
		ExternalPath  string `json:"externalPath"`
		LocationsText string `json:"locationsText"`
		PostedOn      string `json:"postedOn"`
	} `json:"jobPostings"`
}

func (s *nvidiaScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	payload, _ := json.Marshal(map[string]any{
		"appliedFacets": map[string]any{},
		"limit":         100,
		"offset":        0,
		"searchText":    "intern",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, nvidiaJobsURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	util.SetJSONHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://nvidia.wd5.myworkdayjobs.com")
	req.Header.Set("Referer", nvidiaSiteURL)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, nvidiaJobsURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nvidia post: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("nvidia status %d", res.StatusCode)
	}

	var nr nvidiaResponse
	if err := json.NewDecoder(res.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("nvidia decode: %w", err)
	}

	now := time.Now()
	var out []domain.Posting
	for _, j := range nr.JobPostings {
		title := strings.TrimSpace(j.Title)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		// "Posted Today" / "Posted 5 Days Ago"; kept even when unparsable.
		postedAt := util.ParseRelativeDate(j.PostedOn, now)

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: util.CleanText(j.LocationsText),
			URL:      nvidiaSiteURL + j.ExternalPath,
			PostedAt: postedAt,
			JobID:    j.ExternalPath,
		})
	}

	s.log.Debug("nvidia fetch done", zap.Int("kept", len(out)))
	return out, nil
}
