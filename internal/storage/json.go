// Package storage реализует персистентность бота: плоские JSON-файлы,
// которые перечитываются целиком при старте и перезаписываются целиком
// после каждой мутации. Никаких инкрементальных обновлений и транзакций.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// LoadJSON читает JSON-файл в значение типа T.
// Если файл отсутствует — это нормальная ситуация (первый запуск),
// возвращается значение по умолчанию. Если файл повреждён — пишем
// предупреждение и тоже возвращаем значение по умолчанию: бот продолжает
// работу с деградированным состоянием, а не падает.
func LoadJSON[T any](path string, def T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Info("Файл не найден, используем значение по умолчанию")
		} else {
			log.WithError(err).WithField("file", path).Warn("Не удалось прочитать файл")
		}
		return def
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		log.WithError(err).WithField("file", path).Warn("Повреждённый JSON, используем значение по умолчанию")
		return def
	}
	return out
}

// SaveJSON атомарно перезаписывает файл: сначала пишем во временный файл
// рядом, затем rename. Частично записанный файл при падении процесса
// невозможен.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
