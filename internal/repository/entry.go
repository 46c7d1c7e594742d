package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JournalRepository is the Postgres implementation of JournalStore.
type JournalRepository struct {
	db *pgxpool.Pool
}

// GetEntry fetches one day's entry.
func (r *JournalRepository) GetEntry(ctx context.Context, userID uuid.UUID, date string) (model.JournalEntry, error) {
	const q = `
SELECT user_id, to_char(entry_date, 'YYYY-MM-DD'), content, updated_at
FROM journal_entries
WHERE user_id = $1 AND entry_date = $2::date
`
	var e model.JournalEntry
	if err := r.db.QueryRow(ctx, q, userID, date).Scan(&e.UserID, &e.Date, &e.Content, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.JournalEntry{}, fmt.Errorf("journal entry %w", ErrNotFound)
		}
		return model.JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}
	return e, nil
}

// PutEntry upserts the entry for (user, date). A zero UpdatedAt is stamped
// by the database.
func (r *JournalRepository) PutEntry(ctx context.Context, e model.JournalEntry) error {
	const q = `
INSERT INTO journal_entries (user_id, entry_date, content, updated_at)
VALUES ($1, $2::date, $3, COALESCE($4, now()))
ON CONFLICT (user_id, entry_date) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
`
	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		updatedAt = &e.UpdatedAt
	}
	if _, err := r.db.Exec(ctx, q, e.UserID, e.Date, e.Content, updatedAt); err != nil {
		return fmt.Errorf("upsert journal entry: %w", err)
	}
	return nil
}

// ListEntries returns all of a user's entries
func (r *JournalRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]model.JournalEntry, error) {
	const q = `
SELECT user_id, to_char(entry_date, 'YYYY-MM-DD'), content, updated_at
FROM journal_entries
WHERE user_id = $1
ORDER BY entry_date DESC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	out := make([]model.JournalEntry, 0, 8)
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.UserID, &e.Date, &e.Content, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// ProfileRepository keeps PersonalInfo as a JSONB document per user.
type ProfileRepository struct {
	db *pgxpool.Pool
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (model.PersonalInfo, error) {
	const q = `SELECT data FROM profiles WHERE user_id = $1`
	var raw []byte
	if err := r.db.QueryRow(ctx, q, userID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PersonalInfo{}, nil
		}
		return model.PersonalInfo{}, fmt.Errorf("scan profile: %w", err)
	}
	var info model.PersonalInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return model.PersonalInfo{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return info, nil
}

func (r *ProfileRepository) SaveProfile(ctx context.Context, userID uuid.UUID, info model.PersonalInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	const q = `
INSERT INTO profiles (user_id, data, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
`
	if _, err := r.db.Exec(ctx, q, userID, b); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

type SettingsRepository struct {
	db *pgxpool.Pool
}

// GetSettings falls back to the defaults for users who never changed a switch.
func (r *SettingsRepository) GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	const q = `SELECT cloud_storage, biometric_lock FROM user_settings WHERE user_id = $1`
	var s model.Settings
	if err := r.db.QueryRow(ctx, q, userID).Scan(&s.CloudStorage, &s.BiometricLock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, fmt.Errorf("scan settings: %w", err)
	}
	return s, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, userID uuid.UUID, s model.Settings) error {
	const q = `
INSERT INTO user_settings (user_id, cloud_storage, biometric_lock, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id) DO UPDATE
SET cloud_storage = EXCLUDED.cloud_storage, biometric_lock = EXCLUDED.biometric_lock, updated_at = now()
`
	if _, err := r.db.Exec(ctx, q, userID, s.CloudStorage, s.BiometricLock); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
