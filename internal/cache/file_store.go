package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const DefaultTTL = 30 * time.Second

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileStore keeps one JSON file per key under a cache directory.
type FileStore struct {
	dir        string
	defaultTTL time.Duration
}

type fileEntry struct {
	Value  []byte `json:"value"`
	Expiry int64  `json:"expiry"` // unix milliseconds
}

func NewFileStore(dir string, defaultTTL time.Duration) (*FileStore, error) {
	if dir == "" {
		dir = ".cache"
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог кэша: %w", err)
	}

	return &FileStore{dir: dir, defaultTTL: defaultTTL}, nil
}

// sanitizeKey makes a key safe to use as a file name.
func sanitizeKey(key string) string {
	return unsafeKeyChars.ReplaceAllString(key, "_")
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		return nil, false, nil
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, nil
	}

	if time.Now().UnixMilli() > entry.Expiry {
		_ = s.Del(ctx, key)
		return nil, false, nil
	}

	return entry.Value, true, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	entry := fileEntry{
		Value:  value,
		Expiry: time.Now().Add(ttl).UnixMilli(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации записи кэша: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("не удалось создать каталог кэша: %w", err)
	}

	if err := os.WriteFile(s.filePath(key), data, 0o644); err != nil {
		return fmt.Errorf("ошибка при записи кэша: %w", err)
	}

	return nil
}

func (s *FileStore) Del(ctx context.Context, key string) error {
	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка при удалении записи кэша: %w", err)
	}
	return nil
}

func (s *FileStore) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	values := make([][]byte, len(keys))
	for i, key := range keys {
		value, ok, err := s.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		values[i] = value
	}
	return values, nil
}

func (s *FileStore) MSet(ctx context.Context, entries map[string][]byte, ttl time.Duration) error {
	for key, value := range entries {
		if err := s.Set(ctx, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) DelPrefix(ctx context.Context, prefix string) error {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("ошибка при чтении каталога кэша: %w", err)
	}

	safePrefix := sanitizeKey(prefix)
	for _, file := range files {
		if strings.HasPrefix(file.Name(), safePrefix) {
			_ = os.Remove(filepath.Join(s.dir, file.Name()))
		}
	}

	return nil
}
