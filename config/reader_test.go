package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "padlet_db", conf.Database.Master.Name)
	assert.Equal(t, "localhost", conf.Database.Master.Host)
	assert.Equal(t, 5432, conf.Database.Master.Port)
	assert.Equal(t, "root", conf.Database.Master.User)
	assert.Equal(t, "dev_key", conf.Backend.SecretKey)
	assert.Equal(t, "web/static/uploads", conf.Storage.UploadDir)
	assert.Equal(t, int64(DefaultMaxUploadSize), conf.Storage.MaxUploadSize)
	assert.Equal(t, 8080, conf.Backend.Port)
}

func TestLoadYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
db:
  master:
    name: board
    host: db.internal
    port: 6432
    user: board_user
    password: secret
backend:
  port: 9000
storage:
  upload_dir: /var/uploads
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "board", conf.Database.Master.Name)
	assert.Equal(t, "db.internal", conf.Database.Master.Host)
	assert.Equal(t, 6432, conf.Database.Master.Port)
	assert.Equal(t, "secret", conf.Database.Master.Password)
	assert.Equal(t, 9000, conf.Backend.Port)
	assert.Equal(t, "/var/uploads", conf.Storage.UploadDir)
	// Не заданный в файле лимит остается дефолтным
	assert.Equal(t, int64(DefaultMaxUploadSize), conf.Storage.MaxUploadSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_USER", "env_user")
	t.Setenv("DB_PASSWORD", "env_pass")
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_PORT", "7777")
	t.Setenv("DB_NAME", "env_db")
	t.Setenv("SECRET_KEY", "env_secret")
	t.Setenv("UPLOAD_FOLDER", "/tmp/env-uploads")

	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env_user", conf.Database.Master.User)
	assert.Equal(t, "env_pass", conf.Database.Master.Password)
	assert.Equal(t, "env-host", conf.Database.Master.Host)
	assert.Equal(t, 7777, conf.Database.Master.Port)
	assert.Equal(t, "env_db", conf.Database.Master.Name)
	assert.Equal(t, "env_secret", conf.Backend.SecretKey)
	assert.Equal(t, "/tmp/env-uploads", conf.Storage.UploadDir)
}

func TestLoadBrokenYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
