package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, userID uuid.UUID, expiresAt time.Time) error
	// SessionActive reports whether the session exists, is not revoked and has not expired.
	SessionActive(ctx context.Context, sessionID string) (bool, error)
	RevokeSession(ctx context.Context, sessionID string) error
}

type JournalStore interface {
	GetEntry(ctx context.Context, userID uuid.UUID, date string) (model.JournalEntry, error)
	// PutEntry stores entry.UpdatedAt as given; a zero value is stamped by the store.
	PutEntry(ctx context.Context, entry model.JournalEntry) error
	// ListEntries returns a user's entries, newest date first.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]model.JournalEntry, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.PersonalInfo, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, info model.PersonalInfo) error
}

type SettingsStore interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error)
	SaveSettings(ctx context.Context, userID uuid.UUID, s model.Settings) error
}

type ResetTokenStore interface {
	SaveResetToken(ctx context.Context, token model.ResetToken) error
	// ConsumeResetToken returns the token and deletes it. Expired tokens are ErrNotFound.
	ConsumeResetToken(ctx context.Context, token string) (model.ResetToken, error)
}

type Repository struct {
	User     UserStore
	Session  SessionStore
	Journal  JournalStore
	Profile  ProfileStore
	Settings SettingsStore
	Reset    ResetTokenStore
}

// NewRepository builds Postgres-backed stores on a shared pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:     &UserRepository{db: db},
		Session:  &SessionRepository{db: db},
		Journal:  &JournalRepository{db: db},
		Profile:  &ProfileRepository{db: db},
		Settings: &SettingsRepository{db: db},
		Reset:    &ResetRepository{db: db},
	}
}

// NewMemoryRepository keeps everything in process; it is the default when
// no database is configured.
func NewMemoryRepository(now func() time.Time) *Repository {
	m := NewMemoryStore(now)
	return &Repository{
		User:     m,
		Session:  m,
		Journal:  m,
		Profile:  m,
		Settings: m,
		Reset:    m,
	}
}
