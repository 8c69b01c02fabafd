// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: загружает состояние из JSON-файлов, создаёт
// сервисы и обработчики и собирает всё в один объект App.
package app

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/bot"
	"github.com/sensiloles/quit-smoking-bot/internal/config"
	"github.com/sensiloles/quit-smoking-bot/internal/features/notify"
	"github.com/sensiloles/quit-smoking-bot/internal/features/quotes"
	"github.com/sensiloles/quit-smoking-bot/internal/features/registry"
	"github.com/sensiloles/quit-smoking-bot/internal/features/status"
	"github.com/sensiloles/quit-smoking-bot/internal/jobs"
	"github.com/sensiloles/quit-smoking-bot/internal/storage"
)

// App содержит все компоненты приложения.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	BotAPI    *tgbotapi.BotAPI
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(cfg *config.Config) (*App, error) {
	// === 1. Состояние из JSON-файлов ===
	reg := registry.NewService(cfg.UsersFile(), cfg.AdminsFile())

	rawQuotes := storage.LoadJSON(cfg.QuotesFile(), []string{})
	history := storage.LoadJSON(cfg.QuotesHistoryFile(), map[string]string{})
	quotesService := quotes.NewService(rawQuotes, history, cfg.QuotesHistoryFile())

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Telegram API: %w", err)
	}
	log.Infof("Авторизован как @%s", botAPI.Self.UserName)

	// === 3. Сервисы ===
	statusService := status.NewService(cfg, quotesService)
	dispatcher := notify.NewDispatcher(reg, statusService)

	// === 4. Собираем бота ===
	b := bot.New(botAPI, cfg, reg, statusService, dispatcher)

	// === 5. Планировщик задач ===
	scheduler := jobs.NewScheduler(cfg, dispatcher, b.SendMessageToUser)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		BotAPI:    botAPI,
	}, nil
}
