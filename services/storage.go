package services

import (
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Storage - файловое хранилище вложений доски
type Storage struct {
	dir string
}

// NewStorage создает хранилище и директорию под него
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// SanitizeFilename отбрасывает путь и опасные символы из клиентского имени файла
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

// SaveImage записывает вложение под уникальным именем и возвращает
// относительный путь для поля image_path. Имя складывается из случайного
// 128-битного hex-токена и очищенного клиентского имени, поэтому
// одновременные загрузки не могут столкнуться.
func (s *Storage) SaveImage(file *multipart.FileHeader) (string, error) {
	token := uuid.New()
	name := fmt.Sprintf("%s_%s", hex.EncodeToString(token[:]), SanitizeFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "uploads/" + name, nil
}
