package httptransport

import (
	"log/slog"

	"github.com/aidosk/taskvault/internal/auth"
	"github.com/aidosk/taskvault/internal/transport/http/handler"
	"github.com/aidosk/taskvault/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, taskHandler *handler.TaskHandler, codec *auth.TokenCodec) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(codec)

	// Signup/login/logout establish or drop identity and bypass the guard.
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	r.GET("/auth/me", authMW, authHandler.Me)
	r.PUT("/me", authMW, authHandler.UpdateProfile)

	// Protected task routes — every repo call below is additionally
	// owner-scoped; the middleware only resolves identity.
	tasks := r.Group("/tasks", authMW)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.GetByID)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return r
}
