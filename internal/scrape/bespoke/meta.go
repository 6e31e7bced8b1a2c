package bespoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
)

// Meta's careers site is GraphQL behind the scenes; the public search page
// embeds the job list as JSON inside script tags, so the adapter scrapes the
// page HTML and pulls jobId/title pairs out of the inline data.
type metaScraper struct {
	company string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

func newMeta(company string, limiter *util.HostLimiter, log *zap.Logger) types.Scraper {
	return &metaScraper{company: company, hc: util.NewClient(), limiter: limiter, log: log}
}

func (s *metaScraper) Name() string { return "meta" }

var metaJobRe = regexp.MustCompile(`"jobId":"(\d+)","title":"([^"]+)"`)

func (s *metaScraper) FetchJobs(ctx context.Context, specialtyKeywords []string, daysBack int) ([]domain.Posting, error) {
	var out []domain.Posting
	var lastErr error

	for _, term := range []string{"intern", "internship"} {
		jobs, err := s.search(ctx, term, specialtyKeywords)
		if err != nil {
			s.log.Debug("meta query failed", zap.String("term", term), zap.Error(err))
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

func (s *metaScraper) search(ctx context.Context, term string, specialtyKeywords []string) ([]domain.Posting, error) {
	u := "https://www.metacareers.com/jobs?q=" + url.QueryEscape(term) + "&sort_by_new=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", util.UserAgent)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meta get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("meta status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("meta parse html: %w", err)
	}

	var blob strings.Builder
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		blob.WriteString(sel.Text())
	})

	seen := map[string]bool{}
	var out []domain.Posting
	for _, m := range metaJobRe.FindAllStringSubmatch(blob.String(), -1) {
		jobID, title := m[1], m[2]
		if seen[jobID] {
			continue
		}
		seen[jobID] = true

		if !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: "Various",
			URL:      "https://www.metacareers.com/jobs/" + jobID,
			JobID:    jobID,
		})
	}
	return out, nil
}
