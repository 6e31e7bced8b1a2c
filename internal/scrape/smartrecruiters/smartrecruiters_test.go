package smartrecruiters

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
)

func TestNewSlugExtraction(t *testing.T) {
	cases := map[string]string{
		"acme": "acme",
		"https://api.smartrecruiters.com/v1/companies/acme/postings": "acme",
		"https://careers.smartrecruiters.com/acme":                   "acme",
	}
	for in, want := range cases {
		s := New("Acme", in, nil, zap.NewNop())
		assert.Equal(t, want, s.slug, "input %q", in)
	}
}

func TestFetchJobs(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -1).UTC().Format(time.RFC3339)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content":[
			{"id":"s1","name":"Software Engineering Intern","ref":"https://example.com/s1","releasedDate":%q,"location":{"city":"Berlin","country":"Germany"}},
			{"id":"s2","name":"Account Executive","releasedDate":%q,"location":{"city":"Berlin"}}
		]}`, recent, recent)
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.apiURL = srv.URL

	jobs, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "s1", jobs[0].JobID)
	assert.Equal(t, "https://example.com/s1", jobs[0].URL)
	assert.Equal(t, "Berlin, Germany", jobs[0].Location)
}

func TestFetchJobsMalformedDateSkipsRecordOnly(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -1).UTC().Format(time.RFC3339)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content":[
			{"id":"s1","name":"Software Engineering Intern","releasedDate":"not a date","location":{"city":"Berlin"}},
			{"id":"s2","name":"Software Engineering Intern","releasedDate":%q,"location":{"city":"Berlin"}}
		]}`, recent)
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.apiURL = srv.URL

	// One bad date must not fail the page; that record just carries no date.
	jobs, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	require.NoError(t, err)

	require.Len(t, jobs, 2)
	assert.Nil(t, jobs[0].PostedAt)
	require.NotNil(t, jobs[1].PostedAt)
}
