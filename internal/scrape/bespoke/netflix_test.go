package bespoke

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"internhunt/internal/scrape/util"
)

func TestNetflixFetchJobs(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -1).UTC().Format(time.RFC3339)
	stale := time.Now().AddDate(0, 0, -45).UTC().Format(time.RFC3339)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"records":{"postings":[
			{"text":"Software Engineering Intern","external_id":"n1","location":"Los Gatos, CA","posted_date":%q},
			{"text":"Software Engineering Intern","external_id":"n2","location":"Los Gatos, CA","posted_date":%q}
		]}}`, recent, stale)
	}))
	defer srv.Close()

	s := &netflixScraper{company: "Netflix", url: srv.URL, hc: util.NewClient(), log: zap.NewNop()}

	jobs, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	require.NoError(t, err)

	// The stale posting falls outside the lookback window.
	require.Len(t, jobs, 1)
	assert.Equal(t, "n1", jobs[0].JobID)
	assert.Equal(t, "https://jobs.netflix.com/jobs/n1", jobs[0].URL)
	require.NotNil(t, jobs[0].PostedAt)
}
