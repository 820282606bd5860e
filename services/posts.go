package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"padlet/db"
	"padlet/models"

	"gorm.io/gorm"
)

const (
	AnonymousUsername = "Anonymous"
	EventNewPost      = "new_post"
)

type PostService struct {
	orm     *gorm.DB
	hub     *Hub
	storage *Storage
}

func NewPostService(orm *gorm.DB, hub *Hub, storage *Storage) *PostService {
	return &PostService{orm: orm, hub: hub, storage: storage}
}

// NormalizeUsername возвращает обрезанное имя либо дефолт для пустого ввода
func NormalizeUsername(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return AnonymousUsername
	}
	return username
}

// ParseSince разбирает параметр since (epoch в миллисекундах) в момент
// времени в поясе доски. Неразбираемое значение - не ошибка: по контракту
// API такой фильтр дает пустую выборку, поэтому возвращается ok=false.
func ParseSince(raw string) (time.Time, bool) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).In(models.Timezone), true
}

// CreatePost сохраняет вложение, вставляет запись и рассылает событие
// new_post всем подключенным клиентам. Рассылка идет синхронно после
// коммита; упавший между коммитом и рассылкой процесс теряет событие,
// клиенты в этом случае догоняются через листинг.
func (ps *PostService) CreatePost(ctx context.Context, content, username string, image *multipart.FileHeader) (*models.Post, error) {
	post := &models.Post{
		Content:   content,
		Username:  NormalizeUsername(username),
		CreatedAt: time.Now().In(models.Timezone),
	}

	if image != nil && image.Filename != "" {
		relPath, err := ps.storage.SaveImage(image)
		if err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		post.ImagePath = &relPath
	}

	// Файл уже на диске; при неудачной вставке он останется сиротой,
	// компенсация не предусмотрена
	err := db.Write(ctx, ps.orm).Create(post).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := ps.hub.Broadcast(EventNewPost, post.AsResponse()); err != nil {
		log.Printf("ERROR: failed to broadcast post id=%d: %v", post.ID, err)
	}

	return post, nil
}

// ListPosts возвращает записи новее since (все при since=nil),
// свежие первыми
func (ps *PostService) ListPosts(ctx context.Context, since *time.Time) ([]models.PostResponse, error) {
	query := db.Read(ctx, ps.orm).
		Model(&models.Post{}).
		Order("created_at DESC, id DESC")
	if since != nil {
		query = query.Where("created_at > ?", *since)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	out := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].AsResponse())
	}
	return out, nil
}
