package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository is the Postgres implementation of UserStore.
type UserRepository struct {
	db *pgxpool.Pool
}

// CreateUser inserts a new user, filling in the id and timestamps.
func (r *UserRepository) CreateUser(ctx context.Context, u *model.User) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	const q = `
INSERT INTO users (user_id, name, email, phone, age, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING created_at, updated_at
`
	err := r.db.QueryRow(ctx, q, u.UserID, u.Name, u.Email, u.Phone, u.Age, u.PasswordHash).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// PostgreSQL unique_violation code is "23505"
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("email %w", ErrDuplicate)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const userColumns = `user_id, name, email, phone, age, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.Phone, &u.Age, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %w", ErrNotFound)
		}
		return model.User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

// GetUserByID returns a user by id.
func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $1, updated_at = now() WHERE user_id = $2`
	tag, err := r.db.Exec(ctx, q, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %w", ErrNotFound)
	}
	return nil
}

// SessionRepository tracks issued tokens so logout can revoke them.
type SessionRepository struct {
	db *pgxpool.Pool
}

func (r *SessionRepository) CreateSession(ctx context.Context, sessionID string, userID uuid.UUID, expiresAt time.Time) error {
	const q = `
INSERT INTO user_sessions (session_id, user_id, expires_at, is_revoked, created_at)
VALUES ($1, $2, $3, false, now())
`
	if _, err := r.db.Exec(ctx, q, sessionID, userID, expiresAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1 FROM user_sessions
	WHERE session_id = $1 AND NOT is_revoked AND expires_at > now()
)
`
	var ok bool
	if err := r.db.QueryRow(ctx, q, sessionID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return ok, nil
}

func (r *SessionRepository) RevokeSession(ctx context.Context, sessionID string) error {
	const q = `UPDATE user_sessions SET is_revoked = true WHERE session_id = $1`
	tag, err := r.db.Exec(ctx, q, sessionID)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %w", ErrNotFound)
	}
	return nil
}

// ResetRepository stores password reset tokens when Redis is not configured.
type ResetRepository struct {
	db *pgxpool.Pool
}

func (r *ResetRepository) SaveResetToken(ctx context.Context, t model.ResetToken) error {
	const q = `INSERT INTO password_resets (token, user_id, expires_at) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, q, t.Token, t.UserID, t.ExpiresAt); err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

func (r *ResetRepository) ConsumeResetToken(ctx context.Context, token string) (model.ResetToken, error) {
	const q = `
DELETE FROM password_resets
WHERE token = $1
RETURNING token, user_id, expires_at
`
	var t model.ResetToken
	if err := r.db.QueryRow(ctx, q, token).Scan(&t.Token, &t.UserID, &t.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ResetToken{}, fmt.Errorf("reset token %w", ErrNotFound)
		}
		return model.ResetToken{}, fmt.Errorf("consume reset token: %w", err)
	}
	if time.Now().After(t.ExpiresAt) {
		return model.ResetToken{}, fmt.Errorf("reset token %w", ErrNotFound)
	}
	return t, nil
}
