package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index отдает единственную страницу доски
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
