// Package config загружает конфигурацию бота из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- Telegram ---
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`

	// --- Дата отказа от курения ---
	// День/час/минута берутся из расписания уведомлений: старт был
	// ровно в момент первого «якорного» дня.
	StartYear  int `envconfig:"START_YEAR" default:"2025"`
	StartMonth int `envconfig:"START_MONTH" default:"1"`

	// --- Расписание уведомлений ---
	// 23-е число каждого месяца в 21:58. День обязан существовать
	// в любом месяце, поэтому допускаем только 1–28.
	NotificationDay    int `envconfig:"NOTIFICATION_DAY" default:"23"`
	NotificationHour   int `envconfig:"NOTIFICATION_HOUR" default:"21"`
	NotificationMinute int `envconfig:"NOTIFICATION_MINUTE" default:"58"`

	BotTimezone string `envconfig:"BOT_TIMEZONE" default:"Asia/Novosibirsk"`

	// --- Призовой фонд ---
	// Фонд растёт линейно: MONTHLY_AMOUNT + месяцы × PRIZE_FUND_INCREASE,
	// но не выше MAX_PRIZE_FUND. MAX_PRIZE_FUND <= 0 отключает потолок.
	MonthlyAmount     int `envconfig:"MONTHLY_AMOUNT" default:"5000"`
	PrizeFundIncrease int `envconfig:"PRIZE_FUND_INCREASE" default:"5000"`
	MaxPrizeFund      int `envconfig:"MAX_PRIZE_FUND" default:"100000"`

	// --- Application ---
	DataDir     string `envconfig:"DATA_DIR" default:"data"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`

	// --- Bot runtime ---
	// Сколько апдейтов обрабатываем параллельно. Иначе "go на каждый
	// апдейт" = утечка памяти при флуде.
	BotMaxInflight          int `envconfig:"BOT_MAX_INFLIGHT" default:"64"`
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`

	// --- Rate Limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// Load читает переменные окружения и заполняет структуру Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет конфигурацию. Ошибка здесь фатальна:
// с неправильным расписанием или таймзоной бот работать не должен.
func (c *Config) Validate() error {
	if c.NotificationDay < 1 || c.NotificationDay > 28 {
		return fmt.Errorf("NOTIFICATION_DAY должен быть в диапазоне 1-28 (есть в любом месяце), получено %d", c.NotificationDay)
	}
	if c.NotificationHour < 0 || c.NotificationHour > 23 {
		return fmt.Errorf("некорректный NOTIFICATION_HOUR: %d", c.NotificationHour)
	}
	if c.NotificationMinute < 0 || c.NotificationMinute > 59 {
		return fmt.Errorf("некорректный NOTIFICATION_MINUTE: %d", c.NotificationMinute)
	}
	if c.StartMonth < 1 || c.StartMonth > 12 {
		return fmt.Errorf("некорректный START_MONTH: %d", c.StartMonth)
	}
	if c.MonthlyAmount <= 0 || c.PrizeFundIncrease <= 0 {
		return fmt.Errorf("MONTHLY_AMOUNT и PRIZE_FUND_INCREASE должны быть > 0")
	}
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT должен быть > 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS должен быть > 0")
	}
	if _, err := time.LoadLocation(c.BotTimezone); err != nil {
		return fmt.Errorf("некорректная таймзона BOT_TIMEZONE=%q: %w", c.BotTimezone, err)
	}
	return nil
}

// Location возвращает часовой пояс бота.
// После Validate загрузка не может провалиться; UTC — страховка
// на случай прямого конструирования Config в тестах с пустой таймзоной.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BotTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartDate возвращает момент отказа от курения («день ноль»)
// в часовом поясе бота.
func (c *Config) StartDate() time.Time {
	return time.Date(
		c.StartYear, time.Month(c.StartMonth), c.NotificationDay,
		c.NotificationHour, c.NotificationMinute, 0, 0, c.Location(),
	)
}

// Пути к JSON-файлам состояния.

func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "bot_users.json")
}

func (c *Config) AdminsFile() string {
	return filepath.Join(c.DataDir, "bot_admins.json")
}

func (c *Config) QuotesFile() string {
	return filepath.Join(c.DataDir, "quotes.json")
}

func (c *Config) QuotesHistoryFile() string {
	return filepath.Join(c.DataDir, "quotes_history.json")
}
