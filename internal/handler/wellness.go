package handler

import (
	"github.com/aarushimanot/ui-mindmirror/internal/mood"
	"github.com/aarushimanot/ui-mindmirror/internal/prompt"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
)

type promptReq struct {
	Emotion   string `json:"emotion" binding:"required"`
	Sentiment string `json:"sentiment"`
}

func (h *Handler) ListMoods(c *gin.Context) {
	samples := mood.Samples()
	response.OKWithMeta(c, samples, &response.Meta{Total: len(samples)})
}

func (h *Handler) MoodSummary(c *gin.Context) {
	response.OK(c, mood.Summarize(mood.Samples()))
}

func (h *Handler) ListTracks(c *gin.Context) {
	tracks := h.Players.Catalog().Tracks()
	response.OKWithMeta(c, tracks, &response.Meta{Total: len(tracks)})
}

// Prompt maps an emotion reading to its encouragement card
func (h *Handler) Prompt(c *gin.Context) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, prompt.Select(req.Emotion, req.Sentiment))
}

// Emotion returns the camera panel's reading together with its card
func (h *Handler) Emotion(c *gin.Context) {
	d := prompt.Detect()
	response.OK(c, gin.H{
		"detection": d,
		"prompt":    prompt.Select(d.Emotion, d.Sentiment),
	})
}

func (h *Handler) Affirmation(c *gin.Context) {
	response.OK(c, gin.H{"affirmation": h.Affirmations.Pick()})
}
