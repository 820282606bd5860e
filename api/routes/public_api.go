package routes

import (
	"net/http"

	"padlet/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PublicApi регистрирует страницу доски, API, WebSocket и метрики.
// Любой незнакомый путь отправляется редиректом на доску.
func PublicApi(router *gin.Engine, h *handlers.Handler, staticDir string) {
	router.GET("/", h.Index)
	router.Static("/static", staticDir)

	router.GET("/api/posts", h.GetPosts)
	router.POST("/api/posts", h.CreatePost)

	router.GET("/ws", h.WSHandler)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}
