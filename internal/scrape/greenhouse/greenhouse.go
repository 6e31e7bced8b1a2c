package greenhouse

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

// Scraper reads a company's public Greenhouse board through the board-jobs
// JSON API. Greenhouse has no usable server-side keyword search on that
// endpoint, so the whole board is fetched and filtered client-side.
type Scraper struct {
	company string
	board   string
	apiURL  string
	hc      *http.Client
	limiter *util.HostLimiter
	log     *zap.Logger
}

// New accepts either a bare board name or a boards.greenhouse.io/<board> URL.
func New(company, boardRef string, limiter *util.HostLimiter, log *zap.Logger) *Scraper {
	board := boardRef
	if i := strings.Index(boardRef, "greenhouse.io/"); i >= 0 {
		board = boardRef[i+len("greenhouse.io/"):]
		if j := strings.Index(board, "/"); j >= 0 {
			board = board[:j]
		}
	}
	return &Scraper{
		company: company,
		board:   board,
		apiURL:  fmt.Sprintf("https://boards-api.greenhouse.io/v1/boards/%s/jobs", board),
		hc:      util.NewClient(),
		limiter: limiter,
		log:     log,
	}
}

func (s *Scraper) Name() string { return "greenhouse" }

type boardResponse struct {
	Jobs []struct {
		ID          json.Number `json:"id"`
		Title       string      `json:"title"`
		UpdatedAt   string      `json:"updated_at"`
		AbsoluteURL string      `json:"absolute_url"`
		Location    struct {
			Name string `json:"name"`
		} `json:"location"`
	} `json:"jobs"`
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
		return nil, fmt.Errorf("greenhouse get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("greenhouse status %d", res.StatusCode)
	}

	var br boardResponse
	if err := json.NewDecoder(res.Body).Decode(&br); err != nil {
		return nil, fmt.Errorf("greenhouse decode: %w", err)
	}

	var out []domain.Posting
	for _, j := range br.Jobs {
		title := strings.TrimSpace(j.Title)
		if title == "" {
			continue
		}
		if !util.IsInternTitle(title) || !util.MatchesAnyKeyword(title, specialtyKeywords) {
			continue
		}

		// The board API exposes last-updated, not first-posted; it is the
		// closest thing to a posting date the endpoint offers.
		postedAt := util.ParsePostedDate(j.UpdatedAt)
		if !util.WithinDays(postedAt, daysBack) {
			continue
		}

		out = append(out, domain.Posting{
			Company:  s.company,
			Title:    title,
			Location: util.CleanText(j.Location.Name),
			URL:      j.AbsoluteURL,
			PostedAt: postedAt,
			JobID:    j.ID.String(),
		})
	}

	s.log.Debug("greenhouse fetch done",
		zap.String("company", s.company),
		zap.String("board", s.board),
		zap.Int("kept", len(out)))
	return out, nil
}
