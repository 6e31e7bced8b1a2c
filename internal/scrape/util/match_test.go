package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsInternTitle(t *testing.T) {
	assert.True(t, IsInternTitle("Software Engineering Intern"))
	assert.True(t, IsInternTitle("2026 INTERNSHIP - Data Science"))
	assert.True(t, IsInternTitle("Hardware Co-op, Summer"))
	assert.True(t, IsInternTitle("Coop Student, Platform Team"))
	assert.False(t, IsInternTitle("Senior Software Engineer"))
}

func TestIsInternTitleInternationalFalsePositive(t *testing.T) {
	// "intern" is a substring of "international"; the substring rule accepts
	// it on purpose, the specialty filter is the real gate.
	assert.True(t, IsInternTitle("International Marketing Manager"))
}

func TestMatchesAnyKeyword(t *testing.T) {
	kws := []string{"software", "Machine Learning"}

	assert.True(t, MatchesAnyKeyword("Software Engineering Intern", kws))
	assert.True(t, MatchesAnyKeyword("machine learning intern", kws))
	assert.False(t, MatchesAnyKeyword("Finance Intern", kws))
}

func TestMatchesAnyKeywordEmptyListMatchesNothing(t *testing.T) {
	assert.False(t, MatchesAnyKeyword("Software Engineering Intern", nil))
	assert.False(t, MatchesAnyKeyword("Software Engineering Intern", []string{}))
	assert.False(t, MatchesAnyKeyword("Software Engineering Intern", []string{"", "  "}))
}

func TestWithinDays(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -2)
	old := time.Now().AddDate(0, 0, -30)

	assert.True(t, WithinDays(&recent, 7))
	assert.False(t, WithinDays(&old, 7))
}

func TestWithinDaysNilAlwaysPasses(t *testing.T) {
	assert.True(t, WithinDays(nil, 7))
	assert.True(t, WithinDays(nil, 0))
}
