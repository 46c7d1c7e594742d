package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/google/uuid"
)

type session struct {
	userID    uuid.UUID
	expiresAt time.Time
	revoked   bool
}

// MemoryStore implements every store interface on maps. Nothing survives a
// restart.
type MemoryStore struct {
	now func() time.Time

	mu       sync.RWMutex
	users    map[uuid.UUID]model.User
	byEmail  map[string]uuid.UUID
	sessions map[string]session
	journal  map[uuid.UUID]map[string]model.JournalEntry
	profiles map[uuid.UUID]model.PersonalInfo
	settings map[uuid.UUID]model.Settings
	resets   map[string]model.ResetToken
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		now:      now,
		users:    make(map[uuid.UUID]model.User),
		byEmail:  make(map[string]uuid.UUID),
		sessions: make(map[string]session),
		journal:  make(map[uuid.UUID]map[string]model.JournalEntry),
		profiles: make(map[uuid.UUID]model.PersonalInfo),
		settings: make(map[uuid.UUID]model.Settings),
		resets:   make(map[string]model.ResetToken),
	}
}

func (m *MemoryStore) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return fmt.Errorf("email %w", ErrDuplicate)
	}
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	now := m.now()
	u.CreatedAt, u.UpdatedAt = now, now
	m.users[u.UserID] = *u
	m.byEmail[u.Email] = u.UserID
	return nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("user %w", ErrNotFound)
	}
	return m.users[id], nil
}

func (m *MemoryStore) GetUserByID(_ context.Context, id uuid.UUID) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("user %w", ErrNotFound)
	}
	return u, nil
}

func (m *MemoryStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %w", ErrNotFound)
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = m.now()
	m.users[id] = u
	return nil
}

func (m *MemoryStore) CreateSession(_ context.Context, sessionID string, userID uuid.UUID, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = session{userID: userID, expiresAt: expiresAt}
	return nil
}

func (m *MemoryStore) SessionActive(_ context.Context, sessionID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	return ok && !s.revoked && m.now().Before(s.expiresAt), nil
}

func (m *MemoryStore) RevokeSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %w", ErrNotFound)
	}
	s.revoked = true
	m.sessions[sessionID] = s
	return nil
}

func (m *MemoryStore) GetEntry(_ context.Context, userID uuid.UUID, date string) (model.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.journal[userID][date]
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("journal entry %w", ErrNotFound)
	}
	return e, nil
}

func (m *MemoryStore) PutEntry(_ context.Context, e model.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	days, ok := m.journal[e.UserID]
	if !ok {
		days = make(map[string]model.JournalEntry)
		m.journal[e.UserID] = days
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = m.now()
	}
	days[e.Date] = e
	return nil
}

func (m *MemoryStore) ListEntries(_ context.Context, userID uuid.UUID) ([]model.JournalEntry, error) {
	m.mu.RLock()
	days := m.journal[userID]
	out := make([]model.JournalEntry, 0, len(days))
	for _, e := range days {
		out = append(out, e)
	}
	m.mu.RUnlock()

	// YYYY-MM-DD sorts lexically
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *MemoryStore) GetProfile(_ context.Context, userID uuid.UUID) (model.PersonalInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profiles[userID], nil
}

func (m *MemoryStore) SaveProfile(_ context.Context, userID uuid.UUID, info model.PersonalInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[userID] = info
	return nil
}

func (m *MemoryStore) GetSettings(_ context.Context, userID uuid.UUID) (model.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.settings[userID]
	if !ok {
		return model.DefaultSettings(), nil
	}
	return s, nil
}

func (m *MemoryStore) SaveSettings(_ context.Context, userID uuid.UUID, s model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[userID] = s
	return nil
}

func (m *MemoryStore) SaveResetToken(_ context.Context, t model.ResetToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets[t.Token] = t
	return nil
}

func (m *MemoryStore) ConsumeResetToken(_ context.Context, token string) (model.ResetToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.resets[token]
	if !ok {
		return model.ResetToken{}, fmt.Errorf("reset token %w", ErrNotFound)
	}
	delete(m.resets, token)
	if m.now().After(t.ExpiresAt) {
		return model.ResetToken{}, fmt.Errorf("reset token %w", ErrNotFound)
	}
	return t, nil
}
