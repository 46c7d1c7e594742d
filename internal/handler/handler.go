package handler

import (
	"context"
	"time"

	"github.com/aarushimanot/ui-mindmirror/internal/auth"
	"github.com/aarushimanot/ui-mindmirror/internal/journal"
	"github.com/aarushimanot/ui-mindmirror/internal/player"
	"github.com/aarushimanot/ui-mindmirror/internal/prompt"
	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/pkg"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// Delays are the fixed latencies of the simulated account flows.
type Delays struct {
	Login  time.Duration
	Signup time.Duration
	Reset  time.Duration
	Resend time.Duration
}

type Handler struct {
	Logger          *zap.Logger
	Repository      *repository.Repository
	TokenMaker      *auth.JWTMaker
	Hasher          pkg.PasswordHasher
	AccessTTL       time.Duration
	KeepSignedInTTL time.Duration
	ResetTokenTTL   time.Duration
	Delays          Delays
	Players         *player.Manager
	Navigator       *journal.Navigator
	Affirmations    *prompt.AffirmationPicker
	Now             func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// SetClaims stores verified claims for the rest of the request.
func SetClaims(c *gin.Context, claims *auth.UserClaims) {
	c.Set(claimsKey, claims)
}

// GetClaimsFromContext retrieves the verified token claims from the gin context
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// simulate waits out a fixed delay unless the request goes away first.
func simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
