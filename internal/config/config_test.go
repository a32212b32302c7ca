package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 8080
  env: development
database:
  url: postgres://vv:vv@localhost:5432/vv
session:
  cookie_name: custom_session
admin:
  username: root
  password: hunter2
`), 0644))

	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_PATH", path)
	AppConfig = nil

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://vv:vv@localhost:5432/vv", cfg.Database.DSN)
	assert.Equal(t, "custom_session", cfg.Session.CookieName)
	assert.Equal(t, "root", cfg.Admin.Username)

	// Unset knobs take their defaults.
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.AttachmentMaxSize)
	assert.Contains(t, cfg.Upload.AttachmentExtensions, "psd")
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env:env@db:5432/env")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ADMIN_USERNAME", "envadmin")
	t.Setenv("ADMIN_PASSWORD", "envpass")
	t.Setenv("ADMIN_FULL_NAME", "Env Admin")
	AppConfig = nil

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, "postgres://env:env@db:5432/env", cfg.Database.DSN)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "envadmin", cfg.Admin.Username)
	assert.Equal(t, "vv_admin_session", cfg.Session.CookieName)
	assert.Equal(t, "local", cfg.Storage.Type)
}
