package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"internhunt/internal/config"
)

func writeResume(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func testMatcher(t *testing.T) *Matcher {
	dir := t.TempDir()
	writeResume(t, dir, "swe.txt",
		"software engineer golang python distributed systems backend api microservices kubernetes docker")
	writeResume(t, dir, "ml.md",
		"machine learning pytorch tensorflow neural networks model training data science statistics")

	cfg := config.Config{Resumes: map[string]config.Resume{
		"swe": {File: "swe.txt", Description: "Software Resume"},
		"ml":  {File: "ml.md", Description: "ML Resume"},
	}}
	return New(cfg, dir, zap.NewNop())
}

func TestComputePicksBestResume(t *testing.T) {
	m := testMatcher(t)
	require.Equal(t, 2, m.Loaded())

	res := m.Compute("Machine Learning Intern", "work on model training and neural networks with pytorch")
	assert.Equal(t, "ml", res.Recommended)
	assert.Greater(t, res.Score, res.Scores["swe"])
	assert.Contains(t, res.Display, "ML Resume")
	assert.Contains(t, res.Display, "Software Resume")

	res = m.Compute("Backend Software Intern", "build golang microservices and distributed systems on kubernetes")
	assert.Equal(t, "swe", res.Recommended)
}

func TestComputeNoResumes(t *testing.T) {
	m := New(config.Config{}, t.TempDir(), zap.NewNop())
	require.Equal(t, 0, m.Loaded())

	res := m.Compute("Software Intern", "anything")
	assert.Equal(t, "N/A", res.Recommended)
	assert.Zero(t, res.Score)
	assert.Equal(t, "No resumes loaded", res.Display)
}

func TestNewSkipsUnsupportedFormats(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "ok.txt", "software engineer")
	writeResume(t, dir, "bad.docx", "binary junk")

	cfg := config.Config{Resumes: map[string]config.Resume{
		"ok":  {File: "ok.txt"},
		"bad": {File: "bad.docx"},
	}}
	m := New(cfg, dir, zap.NewNop())
	assert.Equal(t, 1, m.Loaded())
}

func TestNewMissingFileNotFatal(t *testing.T) {
	cfg := config.Config{Resumes: map[string]config.Resume{
		"ghost": {File: "does-not-exist.txt"},
	}}
	m := New(cfg, t.TempDir(), zap.NewNop())
	assert.Equal(t, 0, m.Loaded())
}
