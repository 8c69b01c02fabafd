package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		BotToken:                "test-token",
		StartYear:               2025,
		StartMonth:              1,
		NotificationDay:         23,
		NotificationHour:        21,
		NotificationMinute:      58,
		BotTimezone:             "Asia/Novosibirsk",
		MonthlyAmount:           5000,
		PrizeFundIncrease:       5000,
		MaxPrizeFund:            100000,
		BotMaxInflight:          64,
		BotUpdateTimeoutSeconds: 60,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_NotificationDayRange(t *testing.T) {
	// День обязан существовать в любом месяце: 29-е февраля бывает
	// не каждый год.
	cfg := validConfig()
	cfg.NotificationDay = 29
	assert.Error(t, cfg.Validate())

	cfg.NotificationDay = 0
	assert.Error(t, cfg.Validate())

	cfg.NotificationDay = 28
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadTimezone(t *testing.T) {
	cfg := validConfig()
	cfg.BotTimezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadAmounts(t *testing.T) {
	cfg := validConfig()
	cfg.MonthlyAmount = 0
	assert.Error(t, cfg.Validate())
}

func TestStartDate(t *testing.T) {
	cfg := validConfig()

	start := cfg.StartDate()
	loc, err := time.LoadLocation("Asia/Novosibirsk")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.January, 23, 21, 58, 0, 0, loc).Unix(), start.Unix())
	assert.Equal(t, "Asia/Novosibirsk", start.Location().String())
}

func TestFilePaths(t *testing.T) {
	cfg := validConfig()
	cfg.DataDir = "data"

	assert.Equal(t, "data/bot_users.json", cfg.UsersFile())
	assert.Equal(t, "data/bot_admins.json", cfg.AdminsFile())
	assert.Equal(t, "data/quotes.json", cfg.QuotesFile())
	assert.Equal(t, "data/quotes_history.json", cfg.QuotesHistoryFile())
}
