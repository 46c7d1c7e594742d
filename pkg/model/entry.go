package model

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is one day's free text for a user. Date is YYYY-MM-DD.
type JournalEntry struct {
	UserID    uuid.UUID `json:"-" db:"user_id"`
	Date      string    `json:"date" db:"entry_date"`
	Content   string    `json:"content" db:"content"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type SaveEntryReq struct {
	Content string `json:"content"`
}

type NextDateReq struct {
	Current string `json:"current"`
}

type JournalDatesRes struct {
	Current string   `json:"current"`
	Dates   []string `json:"dates"`
}
