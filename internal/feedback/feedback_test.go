package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/internal/store"
)

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return NewLedger(s)
}

func TestRecordAppendsWithID(t *testing.T) {
	l := newLedger(t)

	r1, err := l.Record(FeatureSoilAnalyzer, 4, "useful report")
	require.NoError(t, err)
	assert.NotEmpty(t, r1.ID)
	assert.Equal(t, 4, r1.Rating)
	assert.False(t, r1.Timestamp.IsZero())

	r2, err := l.Record(FeatureChatbot, 5, "")
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, FeatureSoilAnalyzer, all[0].FeatureKey)
	assert.Equal(t, FeatureChatbot, all[1].FeatureKey)
}

func TestRecordRatingBounds(t *testing.T) {
	l := newLedger(t)

	t.Run("below minimum rejected", func(t *testing.T) {
		_, err := l.Record(FeatureChatbot, 0, "")
		assert.Error(t, err)
		assert.Empty(t, l.All())
	})

	t.Run("above maximum clamped", func(t *testing.T) {
		rec, err := l.Record(FeatureChatbot, 6, "")
		require.NoError(t, err)
		assert.Equal(t, 5, rec.Rating)
	})
}

func TestShouldPromptCooldown(t *testing.T) {
	l := newLedger(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	// No record yet: always prompt.
	assert.True(t, l.ShouldPrompt(FeatureSoilAnalyzer))

	_, err := l.Record(FeatureSoilAnalyzer, 5, "")
	require.NoError(t, err)

	// Immediately after, and anywhere inside the window, do not prompt.
	assert.False(t, l.ShouldPrompt(FeatureSoilAnalyzer))

	l.now = func() time.Time { return base.Add(CooldownWindow - time.Second) }
	assert.False(t, l.ShouldPrompt(FeatureSoilAnalyzer))

	// At exactly the boundary the window has not yet elapsed.
	l.now = func() time.Time { return base.Add(CooldownWindow) }
	assert.False(t, l.ShouldPrompt(FeatureSoilAnalyzer))

	l.now = func() time.Time { return base.Add(CooldownWindow + time.Second) }
	assert.True(t, l.ShouldPrompt(FeatureSoilAnalyzer))

	// Other features are unaffected.
	assert.True(t, l.ShouldPrompt(FeatureChatbot))
}

func TestShouldPromptUsesNewestRecord(t *testing.T) {
	l := newLedger(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l.now = func() time.Time { return base.Add(-30 * 24 * time.Hour) }
	_, err := l.Record(FeatureChatbot, 3, "old")
	require.NoError(t, err)

	l.now = func() time.Time { return base }
	_, err = l.Record(FeatureChatbot, 4, "recent")
	require.NoError(t, err)

	l.now = func() time.Time { return base.Add(time.Hour) }
	assert.False(t, l.ShouldPrompt(FeatureChatbot))
}

func TestCorruptLogReadsAsEmpty(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Set("agri_ai_feedback", []byte("not json")))

	l := NewLedger(s)
	assert.True(t, l.ShouldPrompt(FeatureChatbot))

	// Reading corrupt data clears the slot, like a corrupt identity.
	_, ok := s.Get("agri_ai_feedback")
	assert.False(t, ok)
	assert.Empty(t, l.All())

	// The next write starts a fresh log.
	_, err = l.Record(FeatureChatbot, 2, "")
	require.NoError(t, err)
	assert.Len(t, l.All(), 1)
}
