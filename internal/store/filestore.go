package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"buildsurge/internal/domain"
)

// FileStore keeps the collection as a single indented JSON array on
// disk. A missing file is an empty collection, not an error.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

func (s *FileStore) Load() ([]domain.Inquiry, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Inquiry{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	var list []domain.Inquiry
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return list, nil
}

// Save writes to a uniquely named temp file in the same directory and
// renames it into place, so readers never see a half-written array.
func (s *FileStore) Save(list []domain.Inquiry) error {
	if list == nil {
		list = []domain.Inquiry{}
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	tmp := filepath.Join(dir, filepath.Base(s.Path)+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename into %s: %w", s.Path, err)
	}
	return nil
}
