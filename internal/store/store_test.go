package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Get("agri_ai_user")
	assert.False(t, ok)

	require.NoError(t, s.Set("agri_ai_user", []byte(`{"name":"Anand"}`)))

	got, ok := s.Get("agri_ai_user")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Anand"}`, string(got))

	require.NoError(t, s.Set("agri_ai_user", []byte(`{"name":"Priya"}`)))
	got, ok = s.Get("agri_ai_user")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Priya"}`, string(got))
}

func TestStoreRemove(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("agri_ai_feedback", []byte(`[]`)))
	require.NoError(t, s.Remove("agri_ai_feedback"))

	_, ok := s.Get("agri_ai_feedback")
	assert.False(t, ok)

	// Removing again is fine.
	require.NoError(t, s.Remove("agri_ai_feedback"))
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestKeysCannotEscapeDirectory(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("../escape", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".._escape.json", entries[0].Name())
}
