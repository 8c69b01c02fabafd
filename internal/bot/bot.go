// Package bot содержит главный модуль бота — запуск long polling,
// маршрутизацию команд и отправку сообщений.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/bot/middleware"
	"github.com/sensiloles/quit-smoking-bot/internal/config"
	"github.com/sensiloles/quit-smoking-bot/internal/features/notify"
	"github.com/sensiloles/quit-smoking-bot/internal/features/registry"
	"github.com/sensiloles/quit-smoking-bot/internal/features/status"
)

// Bot — главная структура бота, объединяющая все компоненты.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	registry      *registry.Service
	statusService *status.Service
	dispatcher    *notify.Dispatcher

	rateLimiter *middleware.RateLimiter

	// ограничитель параллелизма обработки апдейтов
	inflight chan struct{}
}

// New создаёт новый экземпляр бота со всеми зависимостями.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	reg *registry.Service,
	statusService *status.Service,
	dispatcher *notify.Dispatcher,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		api:           api,
		cfg:           cfg,
		registry:      reg,
		statusService: statusService,
		dispatcher:    dispatcher,
		rateLimiter:   middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		inflight:      make(chan struct{}, maxInFlight),
	}
}

// Start запускает polling обновлений от Telegram.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Бот запущен и ожидает сообщения...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Бот останавливается (ctx done)...")
			b.api.StopReceivingUpdates()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Канал updates закрыт, бот остановлен")
				return
			}

			// лимит параллелизма
			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(upd)
			}(update)
		}
	}
}

// handleUpdate обрабатывает одно обновление от Telegram.
// Бот реагирует только на слэш-команды; остальные сообщения игнорируются.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	if update.Message == nil || update.Message.From == nil {
		return
	}

	message := update.Message
	middleware.LogMessage(message)

	if !message.IsCommand() {
		return
	}

	userID := message.From.ID
	if !b.rateLimiter.Allow(userID) {
		log.WithField("user_id", userID).Debug("rate limited")
		return
	}

	b.routeCommand(message)
}

// routeCommand маршрутизирует команду к нужному обработчику.
func (b *Bot) routeCommand(message *tgbotapi.Message) {
	cmd := message.Command()
	args := message.CommandArguments()
	chatID := message.Chat.ID
	userID := message.From.ID
	firstName := message.From.FirstName

	log.WithFields(log.Fields{
		"cmd":     cmd,
		"args":    args,
		"user_id": userID,
	}).Debug("routing command")

	switch cmd {
	case "start":
		b.handleStart(chatID, userID)

	case "status":
		b.handleStatus(chatID, userID)

	case "my_id":
		b.handleMyID(chatID, userID, firstName)

	case "notify_all":
		b.handleNotifyAll(chatID, userID)

	case "list_users":
		b.handleListUsers(chatID, userID)

	case "list_admins":
		b.handleListAdmins(chatID, userID)

	case "add_admin":
		b.handleAddAdmin(chatID, userID, firstName, args)

	case "remove_admin":
		b.handleRemoveAdmin(chatID, userID, firstName, args)

	case "decline_admin":
		b.handleDeclineAdmin(chatID, userID)
	}
}

// sendMessage — утилита для ответов на команды.
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}

// SendMessageToUser отправляет сообщение пользователю.
// Инжектируется в рассылку как notify.SendFunc: ошибка доставки
// возвращается наверх, где её логируют для каждого получателя.
func (b *Bot) SendMessageToUser(userID int64, text string) error {
	msg := tgbotapi.NewMessage(userID, text)
	_, err := b.api.Send(msg)
	return err
}
