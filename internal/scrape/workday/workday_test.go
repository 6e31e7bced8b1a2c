package workday

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseBoardURL(t *testing.T) {
	cases := []struct {
		in, api, base string
	}{
		{
			"https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs",
			"https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs",
			"https://nvidia.wd5.myworkdayjobs.com",
		},
		{
			"https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite",
			"https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs",
			"https://nvidia.wd5.myworkdayjobs.com",
		},
		{
			"https://adobe.wd5.myworkdayjobs.com/external_experienced",
			"https://adobe.wd5.myworkdayjobs.com/wday/cxs/adobe/external_experienced/jobs",
			"https://adobe.wd5.myworkdayjobs.com",
		},
		{
			"https://example.com/careers",
			"https://example.com/careers/jobs",
			"https://example.com/careers",
		},
	}

	for _, tc := range cases {
		api, base := parseBoardURL(tc.in)
		assert.Equal(t, tc.api, api, "input %q", tc.in)
		assert.Equal(t, tc.base, base, "input %q", tc.in)
	}
}

func TestFetchJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/jobs", r.URL.Path)

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "intern", req.SearchText)
		assert.Equal(t, 100, req.Limit)

		json.NewEncoder(w).Encode(searchResponse{
			Total: 3,
			JobPostings: []posting{
				{Title: "Software Engineering Intern", ExternalPath: "/job/sw-intern-1", LocationsText: "Austin, TX", PostedOn: "Posted Today"},
				{Title: "Senior Software Engineer", ExternalPath: "/job/senior-1", LocationsText: "Remote", PostedOn: "Posted Today"},
				{Title: "Finance Intern", ExternalPath: "/job/fin-intern-1", LocationsText: "NYC", PostedOn: "Posted Today"},
			},
		})
	}))
	defer srv.Close()

	s := New("Acme", srv.URL, nil, zap.NewNop())
	jobs, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "Software Engineering Intern", jobs[0].Title)
	assert.Equal(t, srv.URL+"/job/sw-intern-1", jobs[0].URL)
	assert.Equal(t, "/job/sw-intern-1", jobs[0].JobID)
	require.NotNil(t, jobs[0].PostedAt)
}

func TestFetchJobsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := New("Acme", srv.URL, nil, zap.NewNop())
	_, err := s.FetchJobs(context.Background(), []string{"software"}, 7)
	assert.Error(t, err)
}
