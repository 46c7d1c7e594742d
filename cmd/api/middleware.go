package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aarushimanot/ui-mindmirror/internal/auth"
	"github.com/aarushimanot/ui-mindmirror/internal/handler"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Handler.TokenMaker)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}

		ctx := c.Request.Context()
		active, err := app.Repository.Session.SessionActive(ctx, claims.SessionID())
		if err != nil {
			app.Logger.Sugar().Errorw("session lookup failed", "user_id", claims.UserID, "err", err)
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			return
		}
		if !active {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "session expired or revoked")
			return
		}

		// Check if user still exists
		if _, err := app.Repository.User.GetUserByID(ctx, claims.UserID); err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized access")
			return
		}

		handler.SetClaims(c, claims)
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, tokenMaker *auth.JWTMaker) (*auth.UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}
