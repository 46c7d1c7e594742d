package handler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aarushimanot/ui-mindmirror/internal/journal"
	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
)

// ListEntries returns the user's saved entries, newest first
func (h *Handler) ListEntries(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	entries, err := h.Repository.Journal.ListEntries(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("list entries failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OKWithMeta(c, entries, &response.Meta{Total: len(entries)})
}

func (h *Handler) JournalDates(c *gin.Context) {
	response.OK(c, model.JournalDatesRes{
		Current: h.Navigator.Today(),
		Dates:   h.Navigator.Dates(),
	})
}

// NextDate advances the journal view through the date window
func (h *Handler) NextDate(c *gin.Context) {
	var req model.NextDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, model.JournalDatesRes{
		Current: h.Navigator.Next(req.Current),
		Dates:   h.Navigator.Dates(),
	})
}

// GetEntry returns the entry for a date. A day with nothing written yet
// comes back with empty content.
func (h *Handler) GetEntry(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	date := c.Param("date")
	if _, err := journal.ParseDate(date); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.Repository.Journal.GetEntry(c.Request.Context(), claims.UserID, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.Logger.Sugar().Errorw("get entry failed", "user_id", claims.UserID, "date", date, "err", err)
			response.InternalError(c, "")
			return
		}
		entry = model.JournalEntry{UserID: claims.UserID, Date: date}
	}
	response.OK(c, entry)
}

// PutEntry saves the text for one of the dates in the window
func (h *Handler) PutEntry(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	date := c.Param("date")
	if _, err := journal.ParseDate(date); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !slices.Contains(h.Navigator.Dates(), date) {
		response.ValidationError(c, fmt.Sprintf("entries can only be written for the last %d days", journal.Window))
		return
	}

	var req model.SaveEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(req.Content) > journal.MaxContentLength {
		response.ValidationError(c, "entry is too long")
		return
	}

	entry := model.JournalEntry{
		UserID:    claims.UserID,
		Date:      date,
		Content:   journal.Normalize(req.Content),
		UpdatedAt: h.now().UTC(),
	}
	if err := h.Repository.Journal.PutEntry(c.Request.Context(), entry); err != nil {
		h.Logger.Sugar().Errorw("put entry failed", "user_id", claims.UserID, "date", date, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, entry)
}
