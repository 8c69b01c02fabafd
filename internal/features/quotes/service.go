// Package quotes — ротация мотивационных цитат.
// Цитаты загружаются один раз при старте и дополняются циклически
// до покрытия 240 месяцев (20 лет ежемесячных уведомлений).
package quotes

import (
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/storage"
)

// MinCoverage — минимальная длина списка цитат: 240 месяцев = 20 лет.
const MinCoverage = 240

// FallbackQuote возвращается, когда хранилище цитат пусто.
const FallbackQuote = "Each day without cigarettes is a victory over yourself. - Mark Twain"

// Service хранит расширенный список цитат и выдаёт случайную,
// избегая повтора предыдущей цитаты для каждого запрашивающего.
type Service struct {
	quotes []string

	mu          sync.Mutex
	lastUsed    map[string]string // ключ запрашивающего → последняя выданная цитата
	historyFile string
}

// NewService создаёт сервис цитат.
// raw — сырой список из хранилища, lastUsed — сохранённая история
// последних цитат (может быть nil), historyFile — куда её сохранять.
func NewService(raw []string, lastUsed map[string]string, historyFile string) *Service {
	if lastUsed == nil {
		lastUsed = make(map[string]string)
	}

	extended := Extend(raw)
	if len(extended) == 0 {
		log.Warn("Список цитат пуст, будет использоваться запасная цитата")
	} else {
		log.WithField("count", len(extended)).Info("Цитаты загружены")
	}

	return &Service{
		quotes:      extended,
		lastUsed:    lastUsed,
		historyFile: historyFile,
	}
}

// Extend циклически дополняет список цитат до MinCoverage.
// Пустой список остаётся пустым (запасная цитата подставляется
// при выдаче). Список длиной >= MinCoverage используется как есть.
func Extend(raw []string) []string {
	if len(raw) == 0 || len(raw) >= MinCoverage {
		return raw
	}

	extended := make([]string, 0, MinCoverage)
	extended = append(extended, raw...)
	for i := len(raw); i < MinCoverage; i++ {
		extended = append(extended, raw[i%len(raw)])
	}
	return extended
}

// Len возвращает длину расширенного списка цитат.
func (s *Service) Len() int {
	return len(s.quotes)
}

// GetRandomQuote возвращает случайную цитату для requester,
// отличную от выданной ему в прошлый раз. История последних цитат
// сохраняется в файл после каждой выдачи.
func (s *Service) GetRandomQuote(requester string) string {
	if len(s.quotes) == 0 {
		return FallbackQuote
	}
	if len(s.quotes) == 1 {
		return s.quotes[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.lastUsed[requester]

	// Выбираем из цитат, не совпадающих с предыдущей.
	available := make([]string, 0, len(s.quotes))
	for _, q := range s.quotes {
		if q != last {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		// Все цитаты одинаковые — повтора не избежать.
		return s.quotes[rand.Intn(len(s.quotes))]
	}

	quote := available[rand.Intn(len(available))]
	s.lastUsed[requester] = quote

	if err := storage.SaveJSON(s.historyFile, s.lastUsed); err != nil {
		log.WithError(err).WithField("file", s.historyFile).Error("Не удалось сохранить историю цитат")
	}

	return quote
}
