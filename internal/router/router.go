package router

import (
	"net/http"
	"time"

	"github.com/rohitpatil07/flaskapp/internal/config"
	"github.com/rohitpatil07/flaskapp/internal/handler"
	"github.com/rohitpatil07/flaskapp/internal/mailer"
	"github.com/rohitpatil07/flaskapp/internal/middleware"
	"github.com/rohitpatil07/flaskapp/internal/monitoring"
	"github.com/rohitpatil07/flaskapp/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog(), monitoring.Instrument())

	users := repository.NewUserRepository(db)
	follows := repository.NewFollowRepository(db)
	posts := repository.NewPostRepository(db)
	sessions := repository.NewSessionRepository(db)

	authHandler := handler.NewAuthHandler(users, sessions, mailer.New(cfg.Mail), cfg)
	profileHandler := handler.NewProfileHandler(users)
	postHandler := handler.NewPostHandler(posts, cfg.App.PostsPerPage)
	userHandler := handler.NewUserHandler(users, follows, posts, cfg.App.PostsPerPage)
	exportHandler := handler.NewExportHandler(posts)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ====== API ======
	api := r.Group("/api")

	// no auth required
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/reset-request", authHandler.ResetRequest)
	api.POST("/auth/reset/:token", authHandler.ResetPassword)

	// login required
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret, users, sessions))

	protected.GET("/auth/logout", authHandler.Logout)
	protected.POST("/auth/logout", authHandler.Logout)

	protected.GET("/me", profileHandler.GetMe)
	protected.POST("/profile", profileHandler.UpdateProfile)

	protected.GET("/feed", postHandler.Feed)
	protected.POST("/posts", postHandler.CreatePost)
	protected.GET("/explore", postHandler.Explore)

	protected.GET("/users/:username", userHandler.Profile)
	// follow links on rendered pages are plain anchors, so GET stays alongside POST
	protected.GET("/users/:username/follow", userHandler.Follow)
	protected.POST("/users/:username/follow", userHandler.Follow)
	protected.GET("/users/:username/unfollow", userHandler.Unfollow)
	protected.POST("/users/:username/unfollow", userHandler.Unfollow)

	protected.GET("/export/posts.csv", exportHandler.ExportCSV)
	protected.GET("/export/posts.xlsx", exportHandler.ExportXLSX)

	return r
}
