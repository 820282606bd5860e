package handlers

import (
	"net/http"
	"time"

	"padlet/api/middleware"
	"padlet/models"
	"padlet/services"

	"github.com/gin-gonic/gin"
)

const serviceName = "padlet"

// Буфер разбора multipart в памяти, хвост уходит во временные файлы
const maxMultipartMemory = 32 << 20

// Handler - обработчики API доски с внедренными зависимостями
type Handler struct {
	posts *services.PostService
	hub   *services.Hub
}

func NewHandler(posts *services.PostService, hub *services.Hub) *Handler {
	return &Handler{posts: posts, hub: hub}
}

// GetPosts возвращает записи доски, свежие первыми.
// Параметр since (epoch ms) отдает только записи новее; неразбираемое
// значение по контракту дает пустой массив, а не ошибку.
func (h *Handler) GetPosts(c *gin.Context) {
	var since *time.Time
	if raw, ok := c.GetQuery("since"); ok {
		t, ok := services.ParseSince(raw)
		if !ok {
			c.JSON(http.StatusOK, []models.PostResponse{})
			return
		}
		since = &t
	}

	posts, err := h.posts.ListPosts(c.Request.Context(), since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost создает запись из multipart-формы: content, username,
// опциональный файл image
func (h *Handler) CreatePost(c *gin.Context) {
	// Форма разбирается явно: молчаливый разбор внутри PostForm
	// превратил бы обрезанное лимитом тело в пустую запись
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}

	content := c.PostForm("content")
	username := c.PostForm("username")

	// Отсутствие файла не ошибка
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	post, err := h.posts.CreatePost(c.Request.Context(), content, username, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middleware.RecordPostCreated(serviceName, post.ImagePath != nil)
	c.JSON(http.StatusCreated, post.AsResponse())
}
