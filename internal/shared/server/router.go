package server

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	googleauth "resume-chat-backend/internal/auth"
	"resume-chat-backend/internal/chat"
	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/shared/config"
	"resume-chat-backend/internal/shared/metrics"
	"resume-chat-backend/internal/shared/server/middleware"
	"resume-chat-backend/internal/shared/server/respond"
	"resume-chat-backend/internal/uploads"
	"resume-chat-backend/internal/users"
)

// RouterDeps carries the wired handlers the router mounts. Nil handlers are
// skipped so tests can bring up a partial surface.
type RouterDeps struct {
	Config         config.Config
	DB             *sql.DB
	ResumesHandler *resumes.Handler
	ChatHandler    *chat.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(deps.Config.Env))
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"CHAT":    {Rate: 1, Burst: 5},
			"DEFAULT": {Rate: 10, Burst: 20},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/chat") {
				return "CHAT"
			}
			return "DEFAULT"
		},
	}))

	api.GET("/health", healthHandler(deps.DB))
	registerMeRoutes(api)

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	uploads.RegisterRoutes(api)

	return r
}

// healthHandler reports liveness, with a DB ping detail when one is wired.
func healthHandler(sqlDB *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"ok": true}
		if sqlDB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := sqlDB.PingContext(ctx); err != nil {
				status["database"] = "unreachable"
			} else {
				status["database"] = "ok"
			}
		}
		respond.JSON(c, http.StatusOK, status)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
