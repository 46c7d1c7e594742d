package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// request logger on zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.FullPath(), "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.corsMiddleware())

	h := app.Handler
	v1 := r.Group("/api/v1")
	{
		v1.GET("/healthz", h.Healthz)
		v1.POST("/signup", h.SignUp)
		v1.POST("/login", h.Login)
		v1.POST("/password/forgot", h.ForgotPassword)
		v1.POST("/password/resend", h.ResendReset)
		v1.POST("/password/reset", h.ResetPassword)

		v1.GET("/moods", h.ListMoods)
		v1.GET("/moods/summary", h.MoodSummary)
		v1.GET("/tracks", h.ListTracks)
		v1.POST("/prompt", h.Prompt)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", h.Me)
		protected.POST("/logout", h.Logout)

		// journal
		protected.GET("/journal", h.ListEntries)
		protected.GET("/journal/dates", h.JournalDates)
		protected.POST("/journal/next", h.NextDate)
		protected.GET("/journal/:date", h.GetEntry)
		protected.PUT("/journal/:date", h.PutEntry)

		// profile and settings
		protected.GET("/profile", h.GetProfile)
		protected.PUT("/profile", h.SaveProfile)
		protected.GET("/profile/options", h.ProfileOptions)
		protected.GET("/settings", h.GetSettings)
		protected.PATCH("/settings", h.PatchSettings)

		protected.GET("/emotion", h.Emotion)
		protected.GET("/affirmation", h.Affirmation)

		// audio widgets
		protected.GET("/players", h.ListPlayers)
		protected.GET("/players/:track", h.GetPlayer)
		protected.POST("/players/:track/toggle", h.TogglePlay)
		protected.POST("/players/:track/seek-back", h.SeekBack)
		protected.POST("/players/:track/seek-forward", h.SeekForward)
		protected.PUT("/players/:track/volume", h.SetVolume)
		protected.DELETE("/players/:track", h.ClosePlayer)
	}

	return r
}

func (app *application) corsMiddleware() gin.HandlerFunc {
	origins := app.Config.GetCORSOrigins()
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && slices.Contains(origins, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
			c.Writer.Header().Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
