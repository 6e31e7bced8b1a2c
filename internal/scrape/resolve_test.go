package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"internhunt/internal/domain"
)

func TestResolveBespokeWinsOverType(t *testing.T) {
	// A registered company gets its bespoke adapter even when the entry
	// declares a generic family.
	pc := domain.ProviderConfig{
		Name:   "NVIDIA",
		Type:   "workday",
		APIURL: "https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs",
	}
	s := Resolve("nvidia", pc, nil, zap.NewNop())
	require.NotNil(t, s)
	assert.Equal(t, "nvidia", s.Name())
}

func TestResolveByDeclaredType(t *testing.T) {
	cases := map[string]string{
		"workday":         "workday",
		"greenhouse":      "greenhouse",
		"lever":           "lever",
		"smartrecruiters": "smartrecruiters",
		"eightfold":       "eightfold",
	}
	for declared, want := range cases {
		s := Resolve("somecorp", domain.ProviderConfig{Name: "SomeCorp", Type: declared, APIURL: "https://example.com"}, nil, zap.NewNop())
		require.NotNil(t, s, "type %q", declared)
		assert.Equal(t, want, s.Name(), "type %q", declared)
	}
}

func TestResolveByURLSniffing(t *testing.T) {
	cases := map[string]string{
		"https://acme.wd1.myworkdayjobs.com/acme":          "workday",
		"https://boards.greenhouse.io/acme":                "greenhouse",
		"https://jobs.lever.co/acme":                       "lever",
		"https://careers.smartrecruiters.com/acme":         "smartrecruiters",
		"https://acme.eightfold.ai/api/apply/v2/jobs":      "eightfold",
	}
	for u, want := range cases {
		s := Resolve("somecorp", domain.ProviderConfig{Name: "SomeCorp", APIURL: u}, nil, zap.NewNop())
		require.NotNil(t, s, "url %q", u)
		assert.Equal(t, want, s.Name(), "url %q", u)
	}
}

func TestResolveUnresolvable(t *testing.T) {
	s := Resolve("somecorp", domain.ProviderConfig{Name: "SomeCorp", Type: "custom", APIURL: "https://example.com/careers"}, nil, zap.NewNop())
	assert.Nil(t, s)

	s = Resolve("somecorp", domain.ProviderConfig{Name: "SomeCorp"}, nil, zap.NewNop())
	assert.Nil(t, s)
}

func TestResolveBespokeByName(t *testing.T) {
	s := Resolve("company42", domain.ProviderConfig{Name: "Tesla"}, nil, zap.NewNop())
	require.NotNil(t, s)
	assert.Equal(t, "tesla", s.Name())
}
