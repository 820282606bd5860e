package models

import "time"

// Timezone - фиксированный пояс доски (UTC+7), не зависит от локальной зоны сервера
var Timezone = time.FixedZone("UTC+7", 7*60*60)

const TimeLayout = "2006-01-02 15:04:05"

// Post - модель записи на доске
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	Username  string    `gorm:"size:100" json:"username"`
	ImagePath *string   `gorm:"size:255" json:"image_path"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostResponse - фиксированная JSON-форма записи для API и WebSocket-событий
type PostResponse struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	Username  string  `json:"username"`
	ImagePath *string `json:"image_path"`
	CreatedAt string  `json:"created_at"`
}

// AsResponse сериализует запись в форму ответа, время в поясе доски
func (p *Post) AsResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Content:   p.Content,
		Username:  p.Username,
		ImagePath: p.ImagePath,
		CreatedAt: p.CreatedAt.In(Timezone).Format(TimeLayout),
	}
}
