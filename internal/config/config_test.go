package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("ADMIN_CHAT_ID", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("POLL_TIMEOUT", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30, cfg.PollTimeout)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_CHAT_ID", "7285220061")
	t.Setenv("DATABASE_URL", "postgres://localhost/bookings")
	t.Setenv("POLL_TIMEOUT", "10")

	cfg := Load()

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, int64(7285220061), cfg.AdminChatID)
	assert.Equal(t, "postgres://localhost/bookings", cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.PollTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{BotToken: "123:abc", AdminChatID: 42}
	require.NoError(t, cfg.Validate())

	cfg.BotToken = ""
	require.Error(t, cfg.Validate())

	cfg.BotToken = "123:abc"
	cfg.AdminChatID = 0
	require.Error(t, cfg.Validate())
}

func TestPollTimeoutIgnoresGarbage(t *testing.T) {
	t.Setenv("POLL_TIMEOUT", "not-a-number")
	cfg := Load()
	assert.Equal(t, 30, cfg.PollTimeout)
}
