package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"internhunt/internal/domain"
)

var titleKWs = []string{"intern", "internship", "co-op", "coop"}

func TestRelevant(t *testing.T) {
	specialty := []string{"machine learning"}

	cases := []struct {
		title string
		want  bool
	}{
		{"Machine Learning Intern", true},
		{"Software Engineer Intern", true}, // broad term "engineer"
		{"Research Co-op", true},           // broad term "research"
		{"Marketing Intern", false},        // marker but nothing technical
		{"Machine Learning Engineer", false}, // no intern marker
	}
	for _, tc := range cases {
		got := Relevant(domain.Posting{Title: tc.title}, titleKWs, specialty)
		assert.Equal(t, tc.want, got, "title %q", tc.title)
	}
}

func TestRelevantNoMarkersConfigured(t *testing.T) {
	p := domain.Posting{Title: "Software Engineer Intern"}
	assert.False(t, Relevant(p, nil, []string{"software"}))
}

func TestDedup(t *testing.T) {
	in := []domain.Posting{
		{Company: "Acme", Title: "A", JobID: "1", URL: "https://x/1"},
		{Company: "Acme", Title: "A again", JobID: "1", URL: "https://x/other"},
		{Company: "Acme", Title: "B", URL: "https://x/2"},
		{Company: "Acme", Title: "B again", URL: "https://x/2"},
		{Company: "Other", Title: "A", JobID: "1"},
	}

	out := Dedup(in)
	assert.Len(t, out, 3)
	assert.Equal(t, "A", out[0].Title, "first occurrence wins")
	assert.Equal(t, "B", out[1].Title)
	assert.Equal(t, "Other", out[2].Company, "same job ID under another company is distinct")
}

func TestDedupIdempotent(t *testing.T) {
	in := []domain.Posting{
		{Company: "Acme", Title: "A", JobID: "1"},
		{Company: "Acme", Title: "B", JobID: "2"},
	}
	once := Dedup(in)
	twice := Dedup(once)
	assert.Equal(t, once, twice)
}
