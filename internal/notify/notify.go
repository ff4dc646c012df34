// Package notify manages the local push-notification boundary: a persisted
// subscription registry and delivery of {title, body} payloads. Delivery
// renders to the terminal; the OS-level notification channel sits outside
// this package.
package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"agriai/internal/logging"
	"agriai/internal/store"
)

// registryKey is the store slot for the subscription registry.
const registryKey = "agri_ai_push_subscription"

// Payload is one notification.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Subscription records that this installation opted in to notifications.
type Subscription struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Registry persists the subscription state and delivers payloads.
type Registry struct {
	mu    sync.Mutex
	store *store.Store
	now   func() time.Time
}

// NewRegistry returns a Registry over the given store.
func NewRegistry(s *store.Store) *Registry {
	return &Registry{store: s, now: time.Now}
}

// Subscribe opts in, creating a subscription if none exists. Subscribing
// while already subscribed returns the existing subscription.
func (r *Registry) Subscribe() (Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub, ok := r.load(); ok {
		return sub, nil
	}

	sub := Subscription{ID: uuid.NewString(), CreatedAt: r.now()}
	data, err := json.Marshal(sub)
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to encode subscription: %w", err)
	}
	if err := r.store.Set(registryKey, data); err != nil {
		return Subscription{}, fmt.Errorf("failed to persist subscription: %w", err)
	}

	logging.Notify("subscribed %s", sub.ID)
	return sub, nil
}

// Unsubscribe opts out. Unsubscribing while not subscribed is a no-op.
func (r *Registry) Unsubscribe() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(registryKey); err != nil {
		return fmt.Errorf("failed to remove subscription: %w", err)
	}
	logging.Notify("unsubscribed")
	return nil
}

// Subscribed reports whether a subscription exists.
func (r *Registry) Subscribed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.load()
	return ok
}

// load reads the stored subscription; corrupt data reads as absent.
func (r *Registry) load() (Subscription, bool) {
	data, ok := r.store.Get(registryKey)
	if !ok {
		return Subscription{}, false
	}
	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil || sub.ID == "" {
		logging.Notify("discarding corrupt subscription: %v", err)
		return Subscription{}, false
	}
	return sub, true
}

// Deliver renders a notification to w when subscribed. Delivering while
// unsubscribed is a silent no-op and returns false.
func (r *Registry) Deliver(w io.Writer, p Payload) (bool, error) {
	if !r.Subscribed() {
		return false, nil
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", p.Title, p.Body); err != nil {
		return false, fmt.Errorf("failed to deliver notification: %w", err)
	}
	logging.Notify("delivered %q", p.Title)
	return true, nil
}
