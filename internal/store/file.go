package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
)

// FileStore persists values as a JSON map on disk so the session survives a
// restart of the dashboard process.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: map[string]string{}}

	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *FileStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.save()
	s.mu.Unlock()
}

func (s *FileStore) Clear(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.save()
	s.mu.Unlock()
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = map[string]string{}
			return nil
		}
		return err
	}
	return json.Unmarshal(data, &s.values)
}

func (s *FileStore) save() {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		log.Printf("Failed to encode state file: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		log.Printf("Failed to write state file: %v", err)
	}
}
