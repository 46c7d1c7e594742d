package handler

import (
	"errors"
	"net/http"

	"github.com/aarushimanot/ui-mindmirror/internal/player"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
)

type volumeReq struct {
	Volume *int `json:"volume" binding:"required"`
}

func (h *Handler) ListPlayers(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	states := h.Players.Snapshot(claims.UserID.String())
	response.OKWithMeta(c, states, &response.Meta{Total: len(states)})
}

func (h *Handler) GetPlayer(c *gin.Context) {
	h.withWidget(c, (*player.Widget).Snapshot)
}

func (h *Handler) TogglePlay(c *gin.Context) {
	h.withWidget(c, (*player.Widget).TogglePlay)
}

func (h *Handler) SeekBack(c *gin.Context) {
	h.withWidget(c, (*player.Widget).SeekBack)
}

func (h *Handler) SeekForward(c *gin.Context) {
	h.withWidget(c, (*player.Widget).SeekForward)
}

// SetVolume clamps the requested level to 0..100
func (h *Handler) SetVolume(c *gin.Context) {
	var req volumeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.withWidget(c, func(w *player.Widget) player.State {
		return w.SetVolume(*req.Volume)
	})
}

// ClosePlayer unmounts the widget and stops its tick source
func (h *Handler) ClosePlayer(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	track := c.Param("track")
	if _, err := h.Players.Catalog().Lookup(track); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	h.Players.Close(claims.UserID.String(), track)
	response.NoContent(c)
}

// withWidget mounts the caller's widget for the :track param and applies op.
func (h *Handler) withWidget(c *gin.Context, op func(*player.Widget) player.State) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	w, err := h.Players.Open(claims.UserID.String(), c.Param("track"))
	if err != nil {
		switch {
		case errors.Is(err, player.ErrUnknownTrack):
			response.NotFound(c, err.Error())
		case errors.Is(err, player.ErrShutdown):
			response.Abort(c, http.StatusServiceUnavailable, "UNAVAILABLE", "server is shutting down")
		default:
			h.Logger.Sugar().Errorw("open player failed", "user_id", claims.UserID, "err", err)
			response.InternalError(c, "")
		}
		return
	}
	response.OK(c, player.NewTrackState(w.Track(), op(w)))
}
