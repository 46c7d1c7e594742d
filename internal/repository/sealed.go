package repository

import (
	"context"
	"fmt"

	"github.com/aarushimanot/ui-mindmirror/pkg"
	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/google/uuid"
)

// SealedJournal encrypts entry content before it reaches the inner store
// and decrypts it on the way out. Empty content is stored as is.
type SealedJournal struct {
	inner  JournalStore
	crypto *pkg.Crypto
}

func NewSealedJournal(inner JournalStore, c *pkg.Crypto) *SealedJournal {
	return &SealedJournal{inner: inner, crypto: c}
}

func (s *SealedJournal) GetEntry(ctx context.Context, userID uuid.UUID, date string) (model.JournalEntry, error) {
	e, err := s.inner.GetEntry(ctx, userID, date)
	if err != nil {
		return model.JournalEntry{}, err
	}
	return s.open(e)
}

func (s *SealedJournal) PutEntry(ctx context.Context, e model.JournalEntry) error {
	if e.Content != "" {
		sealed, err := s.crypto.Encrypt(e.Content)
		if err != nil {
			return fmt.Errorf("seal journal entry: %w", err)
		}
		e.Content = sealed
	}
	return s.inner.PutEntry(ctx, e)
}

func (s *SealedJournal) ListEntries(ctx context.Context, userID uuid.UUID) ([]model.JournalEntry, error) {
	entries, err := s.inner.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i], err = s.open(entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (s *SealedJournal) open(e model.JournalEntry) (model.JournalEntry, error) {
	if e.Content == "" {
		return e, nil
	}
	plain, err := s.crypto.Decrypt(e.Content)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("open journal entry %s: %w", e.Date, err)
	}
	e.Content = plain
	return e, nil
}
