package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aarushimanot/ui-mindmirror/internal/auth"
	"github.com/aarushimanot/ui-mindmirror/internal/journal"
	"github.com/aarushimanot/ui-mindmirror/internal/player"
	"github.com/aarushimanot/ui-mindmirror/internal/prompt"
	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/pkg"
	"github.com/aarushimanot/ui-mindmirror/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	h      *Handler
	router *gin.Engine
	logs   *observer.ObservedLogs
}

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    *response.Meta      `json:"meta"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	now := func() time.Time { return fixedNow }

	h := &Handler{
		Logger:          log,
		Repository:      repository.NewMemoryRepository(now),
		TokenMaker:      auth.NewJWTMaker(testSecret, now),
		Hasher:          pkg.PasswordHasher{Cost: bcrypt.MinCost},
		AccessTTL:       time.Hour,
		KeepSignedInTTL: 30 * 24 * time.Hour,
		ResetTokenTTL:   30 * time.Minute,
		// no tick fires within a test
		Players:      player.NewManager(player.DefaultCatalog(log), player.SystemClock(), time.Hour, log),
		Navigator:    journal.NewNavigator(now),
		Affirmations: prompt.NewAffirmationPicker(rand.NewSource(1)),
		Now:          now,
	}

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/signup", h.SignUp)
	v1.POST("/login", h.Login)
	v1.POST("/password/forgot", h.ForgotPassword)
	v1.POST("/password/resend", h.ResendReset)
	v1.POST("/password/reset", h.ResetPassword)
	v1.GET("/moods", h.ListMoods)
	v1.GET("/moods/summary", h.MoodSummary)
	v1.GET("/tracks", h.ListTracks)
	v1.POST("/prompt", h.Prompt)

	p := v1.Group("/")
	p.Use(func(c *gin.Context) {
		claims, err := h.TokenMaker.VerifyToken(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}
		SetClaims(c, claims)
		c.Next()
	})
	p.GET("/me", h.Me)
	p.POST("/logout", h.Logout)
	p.GET("/journal", h.ListEntries)
	p.GET("/journal/dates", h.JournalDates)
	p.POST("/journal/next", h.NextDate)
	p.GET("/journal/:date", h.GetEntry)
	p.PUT("/journal/:date", h.PutEntry)
	p.GET("/profile", h.GetProfile)
	p.PUT("/profile", h.SaveProfile)
	p.GET("/profile/options", h.ProfileOptions)
	p.GET("/settings", h.GetSettings)
	p.PATCH("/settings", h.PatchSettings)
	p.GET("/emotion", h.Emotion)
	p.GET("/affirmation", h.Affirmation)
	p.GET("/players", h.ListPlayers)
	p.GET("/players/:track", h.GetPlayer)
	p.POST("/players/:track/toggle", h.TogglePlay)
	p.POST("/players/:track/seek-back", h.SeekBack)
	p.POST("/players/:track/seek-forward", h.SeekForward)
	p.PUT("/players/:track/volume", h.SetVolume)
	p.DELETE("/players/:track", h.ClosePlayer)

	t.Cleanup(h.Players.Shutdown)
	return &testEnv{h: h, router: r, logs: logs}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func validSignup() map[string]string {
	return map[string]string{
		"name":            "Asha Rao",
		"email":           "Asha@Example.com",
		"phone":           "9876543210",
		"age":             "29",
		"password":        "s3cret-pass",
		"confirmPassword": "s3cret-pass",
	}
}

// signupAndLogin registers the default user and returns an access token.
func (e *testEnv) signupAndLogin(t *testing.T) string {
	t.Helper()
	rec, _ := e.do(t, http.MethodPost, "/api/v1/signup", "", validSignup())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := e.do(t, http.MethodPost, "/api/v1/login", "", map[string]any{
		"email": "asha@example.com", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[struct {
		AccessToken string `json:"access_token"`
	}](t, env.Data).AccessToken
}
