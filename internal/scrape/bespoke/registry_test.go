package bespoke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLookupRegisteredCompanies(t *testing.T) {
	for _, key := range []string{
		"google", "alphabet", "amazon", "apple", "meta", "facebook",
		"microsoft", "nvidia", "tesla", "tiktok", "netflix",
	} {
		_, ok := Lookup(key)
		assert.True(t, ok, "key %q", key)
	}
}

func TestLookupNormalizesKey(t *testing.T) {
	f, ok := Lookup("  Google ")
	require.True(t, ok)
	s := f("Google", nil, zap.NewNop())
	assert.Equal(t, "google", s.Name())
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("acme")
	assert.False(t, ok)
}

func TestAliasesShareAdapter(t *testing.T) {
	f1, ok1 := Lookup("meta")
	f2, ok2 := Lookup("facebook")
	require.True(t, ok1)
	require.True(t, ok2)

	assert.Equal(t, "meta", f1("Meta", nil, zap.NewNop()).Name())
	assert.Equal(t, "meta", f2("Facebook", nil, zap.NewNop()).Name())
}
