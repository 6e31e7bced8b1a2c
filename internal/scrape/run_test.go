package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"internhunt/internal/config"
	"internhunt/internal/domain"
)

func workdayStub(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func testConfig(companies map[string]domain.ProviderConfig) config.Config {
	return config.Config{
		DaysLookback:      7,
		JobTitleKeywords:  []string{"intern", "internship", "co-op", "coop"},
		SpecialtyKeywords: []string{"software"},
		Companies:         companies,
	}
}

func TestPipelineRunOutcomes(t *testing.T) {
	good := workdayStub(t, `{"total":2,"jobPostings":[
		{"title":"Software Engineering Intern","externalPath":"/job/1","locationsText":"Austin","postedOn":"Posted Today"},
		{"title":"Software Engineering Intern","externalPath":"/job/1","locationsText":"Austin","postedOn":"Posted Today"}
	]}`)
	defer good.Close()

	empty := workdayStub(t, `{"total":0,"jobPostings":[]}`)
	defer empty.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer broken.Close()

	cfg := testConfig(map[string]domain.ProviderConfig{
		"good":        {Name: "GoodCorp", Type: "workday", APIURL: good.URL},
		"empty":       {Name: "EmptyCorp", Type: "workday", APIURL: empty.URL},
		"broken":      {Name: "BrokenCorp", Type: "workday", APIURL: broken.URL},
		"unsupported": {Name: "MysteryCorp", Type: "custom", APIURL: "https://example.com/careers"},
	})

	p := NewPipeline(cfg, zap.NewNop())
	postings, outcomes, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSuccess, outcomes["good"])
	assert.Equal(t, domain.OutcomeNoMatchingJobs, outcomes["empty"])
	assert.Equal(t, domain.OutcomeAPIError, outcomes["broken"])
	// An entry with an unsupported provider type counts as an API error,
	// same as a reachable-but-failing endpoint.
	assert.Equal(t, domain.OutcomeAPIError, outcomes["unsupported"])
	assert.Len(t, outcomes, 4, "exactly one outcome per company")

	// The duplicate posting collapses to one.
	require.Len(t, postings, 1)
	assert.Equal(t, "GoodCorp", postings[0].Company)
	assert.Equal(t, "Software Engineering Intern", postings[0].Title)
}

func TestPipelineFailureIsolation(t *testing.T) {
	good := workdayStub(t, `{"total":1,"jobPostings":[
		{"title":"Software Engineering Intern","externalPath":"/job/1","locationsText":"Remote","postedOn":"Posted Today"}
	]}`)
	defer good.Close()

	// Most companies fail; the run must still complete and report them all.
	companies := map[string]domain.ProviderConfig{
		"good": {Name: "GoodCorp", Type: "workday", APIURL: good.URL},
	}
	for _, key := range []string{"a", "b", "c"} {
		companies[key] = domain.ProviderConfig{Name: key, Type: "workday", APIURL: "http://127.0.0.1:1/" + key}
	}

	p := NewPipeline(testConfig(companies), zap.NewNop())
	postings, outcomes, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, postings, 1)
	assert.Len(t, outcomes, 4)
	assert.Equal(t, domain.OutcomeSuccess, outcomes["good"])
	for _, key := range []string{"a", "b", "c"} {
		assert.Equal(t, domain.OutcomeAPIError, outcomes[key], "company %s", key)
	}
}

func TestPipelineContextCancelled(t *testing.T) {
	srv := workdayStub(t, `{"total":0,"jobPostings":[]}`)
	defer srv.Close()

	cfg := testConfig(map[string]domain.ProviderConfig{
		"one": {Name: "One", Type: "workday", APIURL: srv.URL},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(cfg, zap.NewNop())
	_, _, err := p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
