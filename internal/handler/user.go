package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/internal/validate"
	"github.com/aarushimanot/ui-mindmirror/pkg"
	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const resetSentMessage = "If an account exists for this email, a reset link is on its way."

// SignUp validates the whole form, then creates the user
func (h *Handler) SignUp(c *gin.Context) {
	var req validate.SignUpForm
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, "malformed request body")
		return
	}
	if errs := validate.SignUp(req); !errs.Valid() {
		response.FieldErrors(c, errs)
		return
	}

	ctx := c.Request.Context()
	pwHash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}
	// validated above
	age, _ := strconv.Atoi(strings.TrimSpace(req.Age))

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        pkg.NormalizeEmail(req.Email),
		Phone:        req.Phone,
		Age:          age,
		PasswordHash: pwHash,
	}
	if err := simulate(ctx, h.Delays.Signup); err != nil {
		c.Abort()
		return
	}
	if err := h.Repository.User.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Conflict(c, "an account with this email already exists")
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", pkg.MaskEmail(user.Email), "err", err)
		response.InternalError(c, "could not create user")
		return
	}

	h.Logger.Sugar().Infow("user signed up", "user_id", user.UserID)
	response.Created(c, model.UserRes{UserID: user.UserID, Name: user.Name, Email: user.Email})
}

// Login verifies credentials and returns JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := simulate(ctx, h.Delays.Login); err != nil {
		c.Abort()
		return
	}

	email := pkg.NormalizeEmail(req.Email)
	user, err := h.Repository.User.GetUserByEmail(ctx, email)
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", pkg.MaskEmail(email), "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := h.Hasher.Compare(user.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "user_id", user.UserID)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	ttl := h.AccessTTL
	if req.KeepSignedIn {
		ttl = h.KeepSignedInTTL
	}
	accessToken, claims, err := h.TokenMaker.Issue(user.UserID, user.Email, ttl)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}
	expiresAt := claims.RegisteredClaims.ExpiresAt.Time
	if err := h.Repository.Session.CreateSession(ctx, claims.SessionID(), user.UserID, expiresAt); err != nil {
		h.Logger.Sugar().Errorw("error creating session", "err", err)
		response.InternalError(c, "could not create session")
		return
	}

	response.OK(c, model.LoginUserRes{
		SessionID:            claims.SessionID(),
		AccessToken:          accessToken,
		AccessTokenExpiresAt: expiresAt,
		User:                 model.UserRes{UserID: user.UserID, Name: user.Name, Email: user.Email},
	})
}

// Me returns the current user profile
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.Repository.User.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, model.UserRes{UserID: user.UserID, Name: user.Name, Email: user.Email})
}

// Logout revokes the token and unmounts the user's audio widgets
func (h *Handler) Logout(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	if err := h.Repository.Session.RevokeSession(c.Request.Context(), claims.SessionID()); err != nil {
		h.Logger.Sugar().Errorw("revoke session failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "could not revoke session")
		return
	}
	h.Players.CloseUser(claims.UserID.String())
	response.Message(c, "user logged out successfully")
}

// ForgotPassword always answers the same way so it cannot be used to probe
// for accounts. No email is sent; the token is only logged at debug level.
func (h *Handler) ForgotPassword(c *gin.Context) {
	h.requestReset(c, h.Delays.Reset)
}

// ResendReset issues a fresh token after the shorter resend delay.
func (h *Handler) ResendReset(c *gin.Context) {
	h.requestReset(c, h.Delays.Resend)
}

func (h *Handler) requestReset(c *gin.Context, delay time.Duration) {
	var req model.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := simulate(ctx, delay); err != nil {
		c.Abort()
		return
	}

	email := pkg.NormalizeEmail(req.Email)
	user, err := h.Repository.User.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.Logger.Sugar().Errorw("reset lookup failed", "err", err)
		}
		response.Message(c, resetSentMessage)
		return
	}

	token := model.ResetToken{
		Token:     uuid.NewString(),
		UserID:    user.UserID,
		ExpiresAt: h.now().Add(h.ResetTokenTTL),
	}
	if err := h.Repository.Reset.SaveResetToken(ctx, token); err != nil {
		h.Logger.Sugar().Errorw("store reset token failed", "user_id", user.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	h.Logger.Sugar().Debugw("password reset issued", "email", pkg.MaskEmail(email), "token", token.Token)
	response.Message(c, resetSentMessage)
}

// ResetPassword consumes a reset token and sets a new password
func (h *Handler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if errs := validate.Passwords(req.Password, req.ConfirmPassword); !errs.Valid() {
		response.FieldErrors(c, errs)
		return
	}

	ctx := c.Request.Context()
	token, err := h.Repository.Reset.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.Logger.Sugar().Errorw("consume reset token failed", "err", err)
		}
		response.BadRequest(c, "invalid or expired reset token")
		return
	}
	pwHash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}
	if err := h.Repository.User.UpdatePassword(ctx, token.UserID, pwHash); err != nil {
		h.Logger.Sugar().Errorw("update password failed", "user_id", token.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.Message(c, "password updated")
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
