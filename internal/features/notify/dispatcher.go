// Package notify — ежемесячная рассылка статуса всем пользователям.
package notify

import (
	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/features/registry"
	"github.com/sensiloles/quit-smoking-bot/internal/features/status"
)

// SendFunc отправляет текст в чат. Инжектируется ботом.
type SendFunc func(chatID int64, text string) error

// BroadcastKey — ключ ротации цитат для рассылки: все получатели
// одного запуска получают одинаковый текст и одинаковую цитату.
const BroadcastKey = "monthly_notification"

// Dispatcher рассылает статус по списку зарегистрированных пользователей.
type Dispatcher struct {
	registry *registry.Service
	status   *status.Service
}

// NewDispatcher создаёт диспетчер рассылки.
func NewDispatcher(reg *registry.Service, statusService *status.Service) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		status:   statusService,
	}
}

// DispatchMonthly выполняет один прогон рассылки.
// Текст считается ОДИН раз на прогон. Доставка best-effort: ошибка
// по одному получателю логируется и не прерывает остальных; повторов
// и отката нет, частичные сбои видны только в логах.
func (d *Dispatcher) DispatchMonthly(send SendFunc) {
	log.Info("Начало рассылки уведомлений")

	text := d.status.GetStatusInfo(BroadcastKey)

	users := d.registry.AllUsers()
	if len(users) == 0 {
		log.Warn("Некому отправлять уведомления: нет зарегистрированных пользователей")
		return
	}

	sent := 0
	for _, userID := range users {
		if err := send(userID, text); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Не удалось отправить уведомление")
			continue
		}
		sent++
		log.WithField("user_id", userID).Info("Уведомление отправлено")
	}

	log.WithFields(log.Fields{
		"total": len(users),
		"sent":  sent,
	}).Info("Рассылка завершена")
}
