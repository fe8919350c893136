package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore grava cada coleção em <dir>/<nome>.json. É o backend
// padrão quando nem Redis nem Postgres estão configurados.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Read(_ context.Context, collection string, out any) error {
	b, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(b, out)
}

func (s *FileStore) Write(_ context.Context, collection string, value any) error {
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	// Escrita via arquivo temporário + rename para o snapshot nunca
	// ficar meio escrito em disco.
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(collection))
}

var _ Store = (*FileStore)(nil)
