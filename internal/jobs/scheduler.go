// Package jobs управляет фоновыми задачами (cron).
// Единственная задача — ежемесячная рассылка статуса в якорный день
// расписания в часовом поясе бота.
package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/config"
	"github.com/sensiloles/quit-smoking-bot/internal/features/notify"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron       *cron.Cron
	cfg        *config.Config
	dispatcher *notify.Dispatcher
	sendFunc   notify.SendFunc
}

// NewScheduler создаёт планировщик задач в часовом поясе бота.
func NewScheduler(cfg *config.Config, dispatcher *notify.Dispatcher, sendFunc notify.SendFunc) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Location()))

	return &Scheduler{
		cron:       c,
		cfg:        cfg,
		dispatcher: dispatcher,
		sendFunc:   sendFunc,
	}
}

// Start регистрирует ежемесячную рассылку и запускает cron.
func (s *Scheduler) Start() {
	// "минута час день * *" — раз в месяц в якорный день.
	spec := fmt.Sprintf("%d %d %d * *",
		s.cfg.NotificationMinute, s.cfg.NotificationHour, s.cfg.NotificationDay)

	s.cron.AddFunc(spec, func() {
		log.Info("[CRON] Ежемесячная рассылка статуса")
		s.dispatcher.DispatchMonthly(s.sendFunc)
	})

	s.cron.Start()
	log.WithFields(log.Fields{
		"spec":     spec,
		"timezone": s.cfg.BotTimezone,
	}).Info("Планировщик задач запущен")
}

// Stop останавливает планировщик и дожидается завершения текущей задачи.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}
