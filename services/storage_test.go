package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader собирает multipart.FileHeader так, как его видит обработчик
func makeFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(body, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "cat.png", SanitizeFilename("cat.png"))
	assert.Equal(t, "my_photo_1.jpg", SanitizeFilename("my photo 1.jpg"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "evil.exe", SanitizeFilename("C:\\temp\\evil.exe"))
	assert.Equal(t, "file", SanitizeFilename("///"))
	assert.Equal(t, "file", SanitizeFilename("..."))
}

func TestSaveImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage, err := NewStorage(dir)
	require.NoError(t, err)

	fh := makeFileHeader(t, "cat.png", []byte("not-really-a-png"))
	relPath, err := storage.SaveImage(fh)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(relPath, "uploads/"))
	name := strings.TrimPrefix(relPath, "uploads/")

	// Имя на диске не равно клиентскому и начинается со 128-битного hex-токена
	assert.NotEqual(t, "cat.png", name)
	assert.Regexp(t, `^[0-9a-f]{32}_cat\.png$`, name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("not-really-a-png"), data)
}

func TestSaveImageUniqueNames(t *testing.T) {
	storage, err := NewStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	fh := makeFileHeader(t, "same.png", []byte("data"))
	first, err := storage.SaveImage(fh)
	require.NoError(t, err)
	second, err := storage.SaveImage(fh)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
