// pkg/storage/file.go
package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// FileStore хранит кэш в одном JSON-объекте. Файл читается целиком при открытии
// и перезаписывается целиком при каждом Put. Блокировок нет: два одновременных
// запуска с одним файлом теряют записи друг друга.
type FileStore struct {
	path    string
	entries map[string]string
}

// OpenFile загружает кэш из файла; отсутствующий файл означает пустой кэш.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, entries: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, &CacheError{Op: "чтение", Err: err}
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, &CacheError{Op: "разбор " + path, Err: err}
	}
	return s, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *FileStore) Put(_ context.Context, key, value string) error {
	prev, existed := s.entries[key]
	s.entries[key] = value
	if err := s.flush(); err != nil {
		if existed {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return &CacheError{Op: "запись", Key: key, Err: err}
	}
	return nil
}

// Len возвращает число записей.
func (s *FileStore) Len() int {
	return len(s.entries)
}

func (s *FileStore) Close() error {
	return nil
}

// flush пишет во временный файл рядом и переименовывает его, чтобы оборванная
// запись не оставила поврежденный кэш.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
