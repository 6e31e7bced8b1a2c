package greenhouse

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

func TestNewBoardExtraction(t *testing.T) {
	cases := map[string]string{
		"acme": "acme",
		"https://boards.greenhouse.io/acme":          "acme",
		"https://boards.greenhouse.io/acme/jobs/123": "acme",
	}
	for in, want := range cases {
		s := New("Acme", in, nil, zap.NewNop())
		assert.Equal(t, want, s.board, "input %q", in)
	}
}

func TestFetchJobs(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	stale := time.Now().AddDate(0, 0, -60).Format(time.RFC3339)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"jobs":[
			{"id":101,"title":"Software Engineering Intern","updated_at":%q,"absolute_url":"https://example.com/101","location":{"name":"Boston, MA"}},
			{"id":102,"title":"Software Engineering Intern (old)","updated_at":%q,"absolute_url":"https://example.com/102","location":{"name":"Boston, MA"}},
			{"id":103,"title":"Staff Engineer","updated_at":%q,"absolute_url":"https://example.com/103","location":{"name":"Remote"}}
		]}`, recent, stale, recent)
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.apiURL = srv.URL

	jobs, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "101", jobs[0].JobID)
	assert.Equal(t, "https://example.com/101", jobs[0].URL)
	assert.Equal(t, "Boston, MA", jobs[0].Location)
}

func TestFetchJobsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.apiURL = srv.URL

	_, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	assert.Error(t, err)
}
