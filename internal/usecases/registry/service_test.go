package registry

import (
	"regexp"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryInvariants(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	entries := r.Entries()
	require.NotEmpty(t, entries)

	idPattern := regexp.MustCompile(`^\d+$`)
	seen := make(map[string]bool)

	for _, entry := range entries {
		assert.NotEmpty(t, entry.Label)
		assert.Regexp(t, idPattern, entry.AccountID)

		assert.False(t, seen[entry.Label], "duplicate label %q", entry.Label)
		seen[entry.Label] = true
	}
}

func TestEntriesAreLabelSorted(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	entries := r.Entries()
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	}))
}

func TestLookup(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	entry, err := r.Lookup("DE")
	require.NoError(t, err)
	assert.Equal(t, "DE", entry.Label)
	assert.Equal(t, "1946606314", entry.AccountID)

	_, err = r.Lookup("XX")
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestNewFromMapRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name     string
		accounts map[string]string
	}{
		{"empty label", map[string]string{"": "123"}},
		{"non-numeric id", map[string]string{"NL": "customers/123"}},
		{"empty id", map[string]string{"NL": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFromMap(tt.accounts)
			assert.Error(t, err)
		})
	}
}
