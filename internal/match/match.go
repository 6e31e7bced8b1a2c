// Package match scores postings against the configured resumes and picks
// the best-fitting resume per posting. Scoring is lexical TF-IDF cosine
// similarity over the resume corpus.
package match

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/config"
)

// Result is the per-posting outcome: every resume's score plus the pick.
type Result struct {
	Scores      map[string]float64
	Recommended string
	Score       float64
	Display     string
}

type resume struct {
	name        string
	description string
	tf          map[string]float64
}

// Matcher holds the loaded resumes and the corpus IDF weights.
type Matcher struct {
	resumes []resume
	idf     map[string]float64
	log     *zap.Logger
}

var wordRe = regexp.MustCompile(`[a-z][a-z+#-]*`)

func tokenize(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// New loads the resumes named in config and builds the matcher. Plain-text
// and markdown resumes only; a missing or unreadable file is logged and
// skipped, not fatal. Returns a matcher even when no resume loads, so
// Compute can report "no resumes" instead of the caller branching.
func New(cfg config.Config, baseDir string, log *zap.Logger) *Matcher {
	m := &Matcher{idf: map[string]float64{}, log: log}

	names := make([]string, 0, len(cfg.Resumes))
	for name := range cfg.Resumes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := cfg.Resumes[name]
		path := r.File
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".md":
		default:
			log.Warn("unsupported resume format", zap.String("resume", name), zap.String("file", r.File))
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil {
			log.Warn("resume not loaded", zap.String("resume", name), zap.Error(err))
			continue
		}
		desc := r.Description
		if desc == "" {
			desc = name
		}
		m.resumes = append(m.resumes, resume{
			name:        name,
			description: desc,
			tf:          termFreq(tokenize(string(b))),
		})
	}

	m.buildIDF()
	log.Info("resumes loaded", zap.Int("count", len(m.resumes)))
	return m
}

func termFreq(tokens []string) map[string]float64 {
	tf := map[string]float64{}
	for _, t := range tokens {
		tf[t]++
	}
	n := float64(len(tokens))
	if n > 0 {
		for t := range tf {
			tf[t] /= n
		}
	}
	return tf
}

func (m *Matcher) buildIDF() {
	df := map[string]int{}
	for _, r := range m.resumes {
		for t := range r.tf {
			df[t]++
		}
	}
	n := float64(len(m.resumes)) + 1
	for t, d := range df {
		m.idf[t] = math.Log(n/(1+float64(d))) + 1
	}
}

func (m *Matcher) weight(term string) float64 {
	if w, ok := m.idf[term]; ok {
		return w
	}
	// Unseen terms get the max-rarity weight.
	return math.Log(float64(len(m.resumes))+1) + 1
}

func cosine(a, b map[string]float64, weight func(string) float64) float64 {
	var dot, na, nb float64
	for t, av := range a {
		w := weight(t)
		wa := av * w
		na += wa * wa
		if bv, ok := b[t]; ok {
			dot += wa * bv * w
		}
	}
	for t, bv := range b {
		wb := bv * weight(t)
		nb += wb * wb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Compute scores one posting against every resume. The job text is the
// title plus description, capped at 512 words.
func (m *Matcher) Compute(title, description string) Result {
	if len(m.resumes) == 0 {
		return Result{Recommended: "N/A", Display: "No resumes loaded"}
	}

	words := strings.Fields(title + ". " + description)
	if len(words) > 512 {
		words = words[:512]
	}
	jobTF := termFreq(tokenize(strings.Join(words, " ")))

	res := Result{Scores: make(map[string]float64, len(m.resumes)), Recommended: "N/A"}
	for _, r := range m.resumes {
		score := cosine(jobTF, r.tf, m.weight)
		res.Scores[r.name] = math.Round(score*10000) / 10000
		if res.Scores[r.name] > res.Score {
			res.Score = res.Scores[r.name]
			res.Recommended = r.name
		}
	}

	type pair struct {
		desc  string
		score float64
	}
	pairs := make([]pair, 0, len(m.resumes))
	for _, r := range m.resumes {
		pairs = append(pairs, pair{r.description, res.Scores[r.name]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s: %.2f%%", p.desc, p.score*100)
	}
	res.Display = strings.Join(parts, " | ")
	return res
}

// Loaded reports how many resumes are available for scoring.
func (m *Matcher) Loaded() int { return len(m.resumes) }
