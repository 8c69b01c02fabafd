// Package status собирает человекочитаемое статусное сообщение:
// срок без курения, призовой фонд, дата следующего повышения и цитата.
package status

import (
	"fmt"
	"time"

	"github.com/sensiloles/quit-smoking-bot/internal/common"
	"github.com/sensiloles/quit-smoking-bot/internal/config"
	"github.com/sensiloles/quit-smoking-bot/internal/features/period"
	"github.com/sensiloles/quit-smoking-bot/internal/features/quotes"
)

// Service формирует статусные сообщения. Чтение без побочных эффектов
// (не считая обновления истории цитат внутри quotes.Service).
type Service struct {
	cfg    *config.Config
	quotes *quotes.Service

	// now подменяется в тестах для фиксированных дат.
	now func() time.Time
}

// NewService создаёт сервис статуса.
func NewService(cfg *config.Config, quotesService *quotes.Service) *Service {
	return &Service{
		cfg:    cfg,
		quotes: quotesService,
		now:    time.Now,
	}
}

// GetStatusInfo возвращает готовый текст статуса для requester.
// requester — ключ ротации цитат ("status" для /status,
// "monthly_notification" для ежемесячной рассылки).
func (s *Service) GetStatusInfo(requester string) string {
	loc := s.cfg.Location()
	now := s.now().In(loc)
	start := s.cfg.StartDate()

	// Период ещё не начался — дальше считать нечего.
	if now.Before(start) {
		return fmt.Sprintf(
			"🚫 The smoke-free period hasn't started yet. Start date: %s",
			common.FormatDateTime(start),
		)
	}

	p := period.CalculatePeriod(start, now)

	// Индекс завершённых якорных месяцев: до NOTIFICATION_DAY текущий
	// месяц ещё не засчитан.
	monthIdx := p.Years*12 + p.Months
	if now.Day() < s.cfg.NotificationDay {
		monthIdx--
	}
	if monthIdx < 0 {
		monthIdx = 0
	}

	fund := period.CalculatePrizeFund(monthIdx, s.cfg.MonthlyAmount, s.cfg.PrizeFundIncrease, s.cfg.MaxPrizeFund)
	nextFund := period.CalculatePrizeFund(monthIdx+1, s.cfg.MonthlyAmount, s.cfg.PrizeFundIncrease, s.cfg.MaxPrizeFund)
	increase := nextFund - fund

	nextDate := s.nextIncreaseDate(now)
	daysUntil := daysUntilCeil(now, nextDate)

	quote := s.quotes.GetRandomQuote(requester)

	return fmt.Sprintf(
		"📊 Your current status:\n\n"+
			"🚭 Smoke-free period: %d %s, %d %s, %d %s\n"+
			"🗓 Quit date: %s\n"+
			"💰 Current prize fund: %d rubles\n"+
			"📅 Next increase: %s at %s (in %d %s)\n"+
			"➕ Next increase amount: +%d rubles\n\n"+
			"💭 %s",
		p.Years, common.PluralizeYears(p.Years),
		p.Months, common.PluralizeMonths(p.Months),
		p.Days, common.PluralizeDays(p.Days),
		common.FormatDateTime(start),
		fund,
		common.FormatDate(nextDate), common.FormatTime(nextDate),
		daysUntil, common.PluralizeDays(daysUntil),
		increase,
		quote,
	)
}

// nextIncreaseDate возвращает ближайшее наступление якорного дня
// (день/час/минута расписания) относительно now.
// До якорного дня включительно — в текущем месяце, после — в следующем.
func (s *Service) nextIncreaseDate(now time.Time) time.Time {
	day := s.cfg.NotificationDay
	month := now.Month()
	year := now.Year()

	if now.Day() > day {
		// time.Date нормализует месяц 13 в январь следующего года.
		month++
	}

	return time.Date(year, month, day, s.cfg.NotificationHour, s.cfg.NotificationMinute, 0, 0, now.Location())
}

// daysUntilCeil считает число дней до next с округлением вверх:
// любой неполный день считается целым.
func daysUntilCeil(now, next time.Time) int {
	diff := next.Sub(now)
	if diff <= 0 {
		return 0
	}

	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
