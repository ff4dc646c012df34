// Package session tracks who is using the app. Exactly one identity can be
// logged in at a time; it is persisted through the local store and restored
// at startup.
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"agriai/internal/logging"
	"agriai/internal/store"
)

// identityKey is the store slot for the persisted identity.
const identityKey = "agri_ai_user"

// Role is the user's declared occupation.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBroker Role = "broker"
)

// ParseRole validates a role string from a CLI flag.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleFarmer:
		return RoleFarmer, nil
	case RoleBroker:
		return RoleBroker, nil
	}
	return "", fmt.Errorf("invalid role %q (must be farmer or broker)", s)
}

// Identity is the logged-in user.
type Identity struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Manager owns the current identity and its persistence.
type Manager struct {
	mu      sync.RWMutex
	store   *store.Store
	current *Identity
}

// NewManager returns a Manager over the given store. Call Restore to load
// any previously persisted identity.
func NewManager(s *store.Store) *Manager {
	return &Manager{store: s}
}

// Restore loads the persisted identity, if any. Corrupt or invalid data
// fails open to logged-out and the stored slot is cleared; restore never
// reports an error for bad data.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.store.Get(identityKey)
	if !ok {
		return
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil || !id.valid() {
		logging.SessionError("discarding corrupt stored identity: %v", err)
		if err := m.store.Remove(identityKey); err != nil {
			logging.StoreError("failed to clear corrupt identity: %v", err)
		}
		return
	}

	m.current = &id
	logging.Session("restored identity for %s (%s)", id.Name, id.Role)
}

func (id Identity) valid() bool {
	return strings.TrimSpace(id.Name) != "" && (id.Role == RoleFarmer || id.Role == RoleBroker)
}

// Login validates and persists a new identity, replacing any current one.
func (m *Manager) Login(name string, role Role) (Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Identity{}, fmt.Errorf("name must not be blank")
	}
	if role != RoleFarmer && role != RoleBroker {
		return Identity{}, fmt.Errorf("invalid role %q (must be farmer or broker)", role)
	}

	id := Identity{Name: name, Role: role}
	data, err := json.Marshal(id)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to encode identity: %w", err)
	}
	if err := m.store.Set(identityKey, data); err != nil {
		return Identity{}, fmt.Errorf("failed to persist identity: %w", err)
	}

	m.mu.Lock()
	m.current = &id
	m.mu.Unlock()

	logging.Session("logged in %s (%s)", id.Name, id.Role)
	return id, nil
}

// Logout clears the current identity in memory and in the store.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Remove(identityKey); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	logging.Session("logged out")
	return nil
}

// Current returns the logged-in identity, or nil when logged out.
func (m *Manager) Current() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	id := *m.current
	return &id
}
