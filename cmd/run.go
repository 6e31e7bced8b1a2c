package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"internhunt/internal/catalog"
	"internhunt/internal/config"
	"internhunt/internal/domain"
	"internhunt/internal/logger"
	"internhunt/internal/match"
	"internhunt/internal/report"
	"internhunt/internal/scrape"
)

var (
	flagDays         int
	flagOutputDir    string
	flagNoSimilarity bool
	flagWorkers      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search every configured company and write the reports",
	RunE:  runSearch,
}

func init() {
	runCmd.Flags().IntVarP(&flagDays, "days", "d", 0, "days to look back (overrides config)")
	runCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "output directory (overrides config)")
	runCmd.Flags().BoolVar(&flagNoSimilarity, "no-similarity", false, "skip resume matching")
	runCmd.Flags().IntVar(&flagWorkers, "workers", scrape.DefaultWorkers, "concurrent company fetches")
	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	log, err := logger.New(flagJSON, flagDebug)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagDays > 0 {
		cfg.DaysLookback = flagDays
	}
	if flagOutputDir != "" {
		cfg.Output.Directory = flagOutputDir
	}

	baseDir := filepath.Dir(flagConfig)
	unmatched := mergeCompanySources(&cfg, baseDir, log)

	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		return err
	}
	lock := flock.New(filepath.Join(cfg.Output.Directory, ".internhunt.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another run is already writing to %s", cfg.Output.Directory)
	}
	defer lock.Unlock()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting search",
		zap.Int("companies", len(cfg.Companies)),
		zap.Int("days_lookback", cfg.DaysLookback),
		zap.Strings("specialty_keywords", cfg.SpecialtyKeywords))

	pipeline := scrape.NewPipeline(cfg, log)
	pipeline.SetWorkers(flagWorkers)
	postings, outcomes, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	var results []match.Result
	if !flagNoSimilarity {
		matcher := match.New(cfg, baseDir, log)
		if matcher.Loaded() == 0 {
			log.Warn("no resumes loaded, skipping similarity matching")
		} else {
			results = make([]match.Result, len(postings))
			for i, p := range postings {
				results[i] = matcher.Compute(p.Title, p.Description)
			}
		}
	}

	jobsPath, err := report.WriteJobs(postings, results, cfg.Output.FilenamePrefix, cfg.Output.Directory)
	if err != nil {
		return fmt.Errorf("write job report: %w", err)
	}

	categories := categorize(cfg, outcomes, unmatched)
	outcomesPath := filepath.Join(cfg.Output.Directory, "company_search_results.xlsx")
	if err := report.WriteCompanyOutcomes(categories, outcomesPath); err != nil {
		return fmt.Errorf("write outcome report: %w", err)
	}

	log.Info("search complete",
		zap.Int("postings", len(postings)),
		zap.Int("success", countOutcome(outcomes, domain.OutcomeSuccess)),
		zap.Int("no_matching_jobs", countOutcome(outcomes, domain.OutcomeNoMatchingJobs)),
		zap.Int("api_errors", countOutcome(outcomes, domain.OutcomeAPIError)),
		zap.Int("no_api_found", len(unmatched)),
		zap.String("jobs_report", jobsPath),
		zap.String("outcomes_report", outcomesPath))

	fmt.Printf("Found %d postings across %d companies\n", len(postings), len(cfg.Companies))
	fmt.Printf("Job report:      %s\n", jobsPath)
	fmt.Printf("Company report:  %s\n", outcomesPath)
	return nil
}

// mergeCompanySources folds the auxiliary spreadsheets into the config's
// company map: hand-verified APIs first, then catalog-resolved names from
// the free-text list. Returns the names no catalog rule could place.
func mergeCompanySources(cfg *config.Config, baseDir string, log *zap.Logger) []string {
	if cfg.AppliedPositionsFile != "" {
		names, err := catalog.LoadAppliedCompanies(resolvePath(baseDir, cfg.AppliedPositionsFile))
		if err != nil {
			log.Warn("applied positions file not loaded", zap.Error(err))
		} else if len(names) > 0 {
			log.Info("loaded applied companies", zap.Int("count", len(names)))
			cfg.AdditionalCompanies = appendUnique(cfg.AdditionalCompanies, names)
		}
	}

	if cfg.CompanyAPIFile != "" {
		verified, skipped, err := catalog.LoadVerifiedAPIs(resolvePath(baseDir, cfg.CompanyAPIFile))
		if err != nil {
			log.Warn("verified API file not loaded", zap.Error(err))
		} else {
			added := catalog.Merge(cfg.Companies, verified)
			log.Info("merged verified APIs",
				zap.Int("added", added),
				zap.Int("skipped_unsupported", len(skipped)))
		}
	}

	var unmatched []string
	if cfg.CompanyListFile != "" {
		names, err := catalog.LoadCompanyNames(resolvePath(baseDir, cfg.CompanyListFile))
		if err != nil {
			log.Warn("company list file not loaded", zap.Error(err))
		} else {
			resolved, miss := catalog.Generate(names)
			added := catalog.Merge(cfg.Companies, resolved)
			unmatched = miss
			log.Info("merged company list",
				zap.Int("resolved", added),
				zap.Int("unmatched", len(miss)))
		}
	}
	return unmatched
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func appendUnique(dst, src []string) []string {
	seen := map[string]bool{}
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}

// categorize converts keyed outcomes into display-name lists per failure
// category. Catalog-unmatched names join the no-API bucket.
func categorize(cfg config.Config, outcomes map[string]domain.Outcome, unmatched []string) map[domain.Outcome][]string {
	categories := map[domain.Outcome][]string{}
	for key, outcome := range outcomes {
		if outcome == domain.OutcomeSuccess {
			continue
		}
		name := cfg.Companies[key].Name
		if name == "" {
			name = key
		}
		categories[outcome] = append(categories[outcome], name)
	}
	categories[domain.OutcomeNoAPIFound] = append(categories[domain.OutcomeNoAPIFound], unmatched...)
	return categories
}

func countOutcome(outcomes map[string]domain.Outcome, want domain.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o == want {
			n++
		}
	}
	return n
}
