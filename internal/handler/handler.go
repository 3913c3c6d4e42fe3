package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/raphael0002/graphics-garage-api/internal/metrics"
	"github.com/raphael0002/graphics-garage-api/internal/model"
	"github.com/raphael0002/graphics-garage-api/internal/service"
	"github.com/raphael0002/graphics-garage-api/internal/viewcounter"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

type Handler struct {
	services       *service.Service
	tally          *viewcounter.Tally
	contactLimiter *ipLimiter
}

func New(services *service.Service, tally *viewcounter.Tally) *Handler {
	return &Handler{
		services: services,
		tally:    tally,
		// 5 contact messages per minute per IP.
		contactLimiter: newIPLimiter(rate.Every(time.Minute/5), 5),
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/categories", h.categoriesList)

	posts := r.Group("/posts", h.noStoreMiddleware)
	{
		posts.GET("", h.postsList)
		posts.POST("", h.authMiddleware, h.postsCreate)
		posts.GET("/slug/:slug", h.postsGetBySlug)

		post := posts.Group("/:id")
		{
			post.GET("", h.postsGetByID)
			post.PUT("", h.authMiddleware, h.postsUpdate)
			post.DELETE("", h.authMiddleware, h.postsDelete)
			post.POST("/views", h.postsIncrementViews)
		}
	}

	r.POST("/auth/login", h.authLogin)
	r.POST("/contact", h.contactRateLimit, h.contactSend)

	admin := r.Group("/admin", h.authMiddleware)
	{
		admin.POST("/preview", h.adminPreview)
		admin.GET("/stats/views", h.adminViewStats)
	}

	return r
}

func (h *Handler) categoriesList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": model.Categories})
}

// noStoreMiddleware keeps intermediaries and browsers from serving stale
// post data.
func (h *Handler) noStoreMiddleware(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Next()
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedAuthor {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.CachedAuthor)
	if !ok {
		return nil
	}

	return &user
}
