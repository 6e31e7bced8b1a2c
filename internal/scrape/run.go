package scrape

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"internhunt/internal/config"
	"internhunt/internal/domain"
	"internhunt/internal/scrape/util"
)

// DefaultWorkers bounds how many company fetches run at once. The per-host
// limiter already spaces out requests to any single board; this cap keeps
// the total connection count sane.
const DefaultWorkers = 4

// Pipeline fans company fetches out over a bounded worker pool and folds the
// results into one posting list plus a per-company outcome map.
type Pipeline struct {
	cfg     config.Config
	limiter *util.HostLimiter
	log     *zap.Logger
	workers int
}

func NewPipeline(cfg config.Config, log *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		limiter: util.NewHostLimiter(1, 1),
		log:     log,
		workers: DefaultWorkers,
	}
}

// SetWorkers overrides the pool size; values below one are ignored.
func (p *Pipeline) SetWorkers(n int) {
	if n >= 1 {
		p.workers = n
	}
}

// Run fetches every configured company and returns the deduplicated postings
// alongside an outcome per company. Fetch failures are folded into outcomes
// rather than aborting the run; the returned error is non-nil only when the
// context is cancelled.
func (p *Pipeline) Run(ctx context.Context) ([]domain.Posting, map[string]domain.Outcome, error) {
	keys := make([]string, 0, len(p.cfg.Companies))
	for k := range p.cfg.Companies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	outcomes := make(map[string]domain.Outcome, len(keys))
	byCompany := make(map[string][]domain.Posting)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, key := range keys {
		pc := p.cfg.Companies[key]
		name := pc.Name
		if name == "" {
			name = key
		}

		// A config entry whose type resolves to no adapter is an API error;
		// no_api_found is reserved for names the catalog never resolved to a
		// provider entry at all.
		sc := Resolve(key, pc, p.limiter, p.log)
		if sc == nil {
			p.log.Info("no adapter for company", zap.String("company", name), zap.String("type", pc.Type))
			mu.Lock()
			outcomes[key] = domain.OutcomeAPIError
			mu.Unlock()
			continue
		}

		key := key
		g.Go(func() error {
			jobs, err := sc.FetchJobs(ctx, p.cfg.SpecialtyKeywords, p.cfg.DaysLookback)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				p.log.Warn("fetch failed", zap.String("company", name), zap.Error(err))
				mu.Lock()
				outcomes[key] = domain.OutcomeAPIError
				mu.Unlock()
				return nil
			}

			kept := jobs[:0:0]
			for _, j := range jobs {
				if Relevant(j, p.cfg.JobTitleKeywords, p.cfg.SpecialtyKeywords) {
					kept = append(kept, j)
				}
			}

			mu.Lock()
			if len(kept) == 0 {
				outcomes[key] = domain.OutcomeNoMatchingJobs
			} else {
				outcomes[key] = domain.OutcomeSuccess
				byCompany[key] = kept
			}
			mu.Unlock()

			p.log.Debug("company done",
				zap.String("company", name),
				zap.Int("fetched", len(jobs)),
				zap.Int("kept", len(kept)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Companies in sorted order keeps the output stable run to run.
	var all []domain.Posting
	for _, key := range keys {
		all = append(all, byCompany[key]...)
	}
	return Dedup(all), outcomes, nil
}
