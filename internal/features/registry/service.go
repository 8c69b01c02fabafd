// Package registry — реестр пользователей и администраторов.
// Два множества целочисленных Telegram ID с сохранением в JSON-файлы
// после каждой мутации. Порядок добавления сохраняется для вывода списков.
package registry

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/storage"
)

// Service управляет множествами пользователей и администраторов.
//
// Все мутации сериализуются мьютексом: апдейты Telegram обрабатываются
// на пуле горутин, и гонка «первый пользователь становится админом»
// без блокировки потеряла бы записи.
type Service struct {
	mu     sync.Mutex
	users  []int64
	admins []int64

	usersFile  string
	adminsFile string
}

// NewService загружает оба реестра из JSON-файлов.
// Отсутствующий или повреждённый файл даёт пустой реестр:
// бот продолжает работу, bootstrap-правило первого админа сработает снова.
func NewService(usersFile, adminsFile string) *Service {
	s := &Service{
		users:      storage.LoadJSON(usersFile, []int64{}),
		admins:     storage.LoadJSON(adminsFile, []int64{}),
		usersFile:  usersFile,
		adminsFile: adminsFile,
	}

	if len(s.admins) == 0 {
		log.Warn("Список админов пуст: первый обратившийся пользователь станет админом")
	}
	log.WithFields(log.Fields{
		"users":  len(s.users),
		"admins": len(s.admins),
	}).Info("Реестры загружены")

	return s
}

// AddUser регистрирует пользователя.
// Возвращает true, если пользователь новый (реестр сохранён),
// false — если уже был зарегистрирован (без записи на диск).
func (s *Service) AddUser(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.users, userID) {
		return false
	}

	s.users = append(s.users, userID)
	s.saveUsers()
	log.WithField("user_id", userID).Info("Новый пользователь зарегистрирован")
	return true
}

// AddAdmin добавляет администратора. Контракт тот же, что у AddUser.
func (s *Service) AddAdmin(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.admins, userID) {
		return false
	}

	s.admins = append(s.admins, userID)
	s.saveAdmins()
	log.WithField("user_id", userID).Info("Новый админ добавлен")
	return true
}

// RemoveAdmin убирает админские права.
// Возвращает false, если userID не админ ЛИБО это последний админ:
// реестр админов, однажды став непустым, пустым быть не может.
func (s *Service) RemoveAdmin(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !contains(s.admins, userID) {
		return false
	}
	if len(s.admins) <= 1 {
		log.WithField("user_id", userID).Warn("Отказ: нельзя удалить последнего админа")
		return false
	}

	filtered := make([]int64, 0, len(s.admins)-1)
	for _, id := range s.admins {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	s.admins = filtered
	s.saveAdmins()
	log.WithField("user_id", userID).Info("Админ удалён")
	return true
}

// IsAdmin проверяет членство в реестре админов. Без побочных эффектов.
func (s *Service) IsAdmin(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.admins, userID)
}

// IsUser проверяет, зарегистрирован ли пользователь.
func (s *Service) IsUser(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.users, userID)
}

// HasAdmins сообщает, есть ли хоть один админ.
// Используется bootstrap-правилом в обработчике /start.
func (s *Service) HasAdmins() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.admins) > 0
}

// AllUsers возвращает копию списка пользователей в порядке регистрации.
// Изменение результата не затрагивает внутреннее состояние.
func (s *Service) AllUsers() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, len(s.users))
	copy(out, s.users)
	return out
}

// AllAdmins возвращает копию списка админов.
func (s *Service) AllAdmins() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, len(s.admins))
	copy(out, s.admins)
	return out
}

// saveUsers и saveAdmins перезаписывают файл целиком.
// Ошибка записи не останавливает бот: состояние в памяти корректно,
// потеря всплывёт только при рестарте. Вызывать только под mu.

func (s *Service) saveUsers() {
	if err := storage.SaveJSON(s.usersFile, s.users); err != nil {
		log.WithError(err).WithField("file", s.usersFile).Error("Не удалось сохранить пользователей")
	}
}

func (s *Service) saveAdmins() {
	if err := storage.SaveJSON(s.adminsFile, s.admins); err != nil {
		log.WithError(err).WithField("file", s.adminsFile).Error("Не удалось сохранить админов")
	}
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
