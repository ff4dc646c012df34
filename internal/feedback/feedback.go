// Package feedback keeps an append-only log of per-feature user ratings and
// decides when it is polite to ask for feedback again.
package feedback

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"agriai/internal/logging"
	"agriai/internal/store"
)

// ledgerKey is the store slot holding the serialized feedback log.
const ledgerKey = "agri_ai_feedback"

// CooldownWindow is how long after the latest record a feature waits before
// prompting for feedback again.
const CooldownWindow = 7 * 24 * time.Hour

// FeatureKey identifies a feature that collects feedback.
type FeatureKey string

const (
	FeatureSoilAnalyzer FeatureKey = "soilAnalyzer"
	FeatureChatbot      FeatureKey = "chatbot"
)

// Record is one submitted piece of feedback.
type Record struct {
	ID         string     `json:"id"`
	FeatureKey FeatureKey `json:"featureKey"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Ledger is the append-only feedback log backed by the local store.
type Ledger struct {
	mu    sync.Mutex
	store *store.Store
	now   func() time.Time
}

// NewLedger returns a Ledger over the given store.
func NewLedger(s *store.Store) *Ledger {
	return &Ledger{store: s, now: time.Now}
}

// load reads the stored log. Missing or corrupt data reads as empty; a
// corrupt slot is cleared so it cannot shadow later writes.
func (l *Ledger) load() []Record {
	data, ok := l.store.Get(ledgerKey)
	if !ok {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		logging.Feedback("discarding corrupt feedback log: %v", err)
		if err := l.store.Remove(ledgerKey); err != nil {
			logging.StoreError("failed to clear corrupt feedback log: %v", err)
		}
		return nil
	}
	return records
}

// ShouldPrompt reports whether the feature may ask the user for feedback:
// true when the feature has no record yet, or when its newest record is
// strictly older than the cooldown window.
func (l *Ledger) ShouldPrompt(key FeatureKey) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var latest time.Time
	for _, r := range l.load() {
		if r.FeatureKey == key && r.Timestamp.After(latest) {
			latest = r.Timestamp
		}
	}
	if latest.IsZero() {
		return true
	}
	return l.now().Sub(latest) > CooldownWindow
}

// Record appends a feedback entry. Ratings below 1 are rejected; ratings
// above 5 are clamped to 5. The comment is stored verbatim.
func (l *Ledger) Record(key FeatureKey, rating int, comment string) (Record, error) {
	if rating < 1 {
		return Record{}, fmt.Errorf("rating must be at least 1, got %d", rating)
	}
	if rating > 5 {
		rating = 5
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec := Record{
		ID:         uuid.NewString(),
		FeatureKey: key,
		Rating:     rating,
		Comment:    comment,
		Timestamp:  l.now(),
	}

	records := append(l.load(), rec)
	data, err := json.Marshal(records)
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode feedback log: %w", err)
	}
	if err := l.store.Set(ledgerKey, data); err != nil {
		return Record{}, fmt.Errorf("failed to persist feedback: %w", err)
	}

	logging.Feedback("recorded feedback for %s: rating=%d", key, rating)
	return rec, nil
}

// All returns every record in insertion order.
func (l *Ledger) All() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}
