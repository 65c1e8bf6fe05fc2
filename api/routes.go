package api

import (
	"log/slog"
	"net/http"
	"time"

	"meet-lab/services"

	"github.com/gin-gonic/gin"
)

// Handler serves the local demo API over the client services.
type Handler struct {
	auth          services.IAuthService
	sessions      services.ISessionService
	chat          services.IChatService
	meetings      services.IMeetingService
	submitTimeout time.Duration
	log           *slog.Logger
}

func NewHandler(
	auth services.IAuthService,
	sessions services.ISessionService,
	chat services.IChatService,
	meetings services.IMeetingService,
	submitTimeout time.Duration,
	log *slog.Logger) *Handler {
	return &Handler{
		auth:          auth,
		sessions:      sessions,
		chat:          chat,
		meetings:      meetings,
		submitTimeout: submitTimeout,
		log:           log,
	}
}

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.POST("/login", h.Login)
		api.POST("/signup", h.Signup)
		api.GET("/password-strength", h.PasswordStrength)
		api.GET("/session", h.Session)
		api.POST("/logout", h.Logout)
	}

	meetings := api.Group("/meetings")
	meetings.Use(AuthMiddleware(h.sessions))
	{
		meetings.POST("", h.StartMeeting)
		meetings.POST("/join", h.JoinMeeting)
		meetings.POST("/:code/end", h.EndMeeting)
		meetings.GET("/:code/link", h.ShareLink)

		meetings.GET("/:code/chat", h.ChatHistory)
		meetings.POST("/:code/chat", h.SendMessage)
		meetings.DELETE("/:code/chat", h.ClearChat)

		meetings.GET("/:code/controls", h.Controls)
		meetings.POST("/:code/controls/:action", h.ApplyControl)
		meetings.POST("/:code/shortcut", h.ApplyShortcut)
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("Request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}
