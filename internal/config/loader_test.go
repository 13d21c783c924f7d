package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, "jwt:\n  secret_key: test-secret\ndatabase:\n  path: "+filepath.Join(dir, "app.db")+"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:18080", cfg.Server.GetAddress())
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	// 默认令牌有效期 12 小时
	assert.Equal(t, 12*time.Hour, cfg.JWT.GetExpireDuration())
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 10, cfg.RateLimit.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.RateLimit.GetWindow())
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, `
server:
  host: "127.0.0.1"
  port: 9000
database:
  path: "`+filepath.Join(dir, "app.db")+`"
jwt:
  secret_key: test-secret
  expire_minutes: 30
redis_service:
  host: "localhost"
rate_limit:
  max_attempts: 5
  window_seconds: 120
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.GetAddress())
	assert.Equal(t, 30*time.Minute, cfg.JWT.GetExpireDuration())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddress())
	assert.Equal(t, 5, cfg.RateLimit.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.GetWindow())
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9000\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT密钥不能为空")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
