package handler

import (
	"errors"

	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	info, err := h.Repository.Profile.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("get profile failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, info)
}

// SaveProfile stores the sheet as submitted; every field is optional
func (h *Handler) SaveProfile(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.PersonalInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.Repository.Profile.SaveProfile(c.Request.Context(), claims.UserID, req); err != nil {
		h.Logger.Sugar().Errorw("save profile failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	h.Logger.Sugar().Infow("personal info saved", "user_id", claims.UserID,
		"gender", req.Gender, "profession", req.Profession, "relationship_status", req.RelationshipStatus)
	response.OK(c, req)
}

func (h *Handler) ProfileOptions(c *gin.Context) {
	response.OK(c, model.DefaultProfileOptions())
}

func (h *Handler) GetSettings(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	s, err := h.Repository.Settings.GetSettings(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("get settings failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, s.Response())
}

// PatchSettings flips the switches present in the body
func (h *Handler) PatchSettings(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.PatchSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	current, err := h.Repository.Settings.GetSettings(ctx, claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("get settings failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	next, err := req.Apply(current)
	if err != nil {
		if errors.Is(err, model.ErrConflictingStorage) {
			response.ValidationError(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.Repository.Settings.SaveSettings(ctx, claims.UserID, next); err != nil {
		h.Logger.Sugar().Errorw("save settings failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, next.Response())
}
