package routes

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"trickhub/config"
	"trickhub/handlers"
	"trickhub/helper"
	"trickhub/middleware"
	"trickhub/models"
	"trickhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services are the collaborators the HTTP layer dispatches to.
type Services struct {
	Auth       services.AuthService
	Tokens     services.TokenService
	Articles   services.ArticleService
	Engagement services.EngagementService
}

func New(cfg *config.Config, logger *slog.Logger, svc Services) (*gin.Engine, error) {
	httpHelper, err := helper.NewHTTPHelper(cfg.Media.URL)
	if err != nil {
		return nil, err
	}

	authHandler := handlers.NewAuthHandler(svc.Auth, httpHelper)
	articleHandler := handlers.NewArticleHandler(svc.Articles, httpHelper)
	engagementHandler := handlers.NewEngagementHandler(svc.Engagement, httpHelper)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg.CORS.AllowedOrigins)),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if mediaURL := "/" + strings.Trim(cfg.Media.URL, "/"); mediaURL != "/" {
		router.Static(mediaURL, cfg.Media.Root)
	}

	authRequired := middleware.AuthMiddleware(svc.Tokens)
	optionalAuth := middleware.OptionalAuth(svc.Tokens)

	account := router.Group("/account")
	{
		account.POST("/register", authHandler.Register)
		account.POST("/login", authHandler.Login)
		account.GET("/profile", authRequired, authHandler.GetProfile)
	}

	articles := router.Group("/services/articles")
	{
		articles.GET("/", articleHandler.GetArticles)
		articles.POST("/", authRequired, middleware.RequireRole(models.RoleAdmin), articleHandler.CreateArticle)

		articles.GET("/:id/:slug/", articleHandler.GetArticle)
		articles.PUT("/:id/", authRequired, articleHandler.UpdateArticle)
		articles.PATCH("/:id/", authRequired, articleHandler.UpdateArticle)
		articles.DELETE("/:id/", authRequired, articleHandler.DeleteArticle)

		articles.GET("/:id/likes/", engagementHandler.GetLikes)
		articles.POST("/:id/likes/", authRequired, engagementHandler.ToggleLike)

		articles.GET("/:id/comments/", engagementHandler.GetComments)
		articles.POST("/:id/comments/", optionalAuth, engagementHandler.CreateComment)
	}

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
